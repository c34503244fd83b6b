package content

import "time"

// String returns a pointer to s. Extractors use it to mark a field as found.
func String(s string) *string {
	return &s
}

// Home is the content of the temple home page.
type Home struct {
	Thought        *string   `json:"thought,omitempty"`
	UpcomingEvents []string  `json:"upcoming_events,omitempty"`
	CarouselImages []string  `json:"carousel_images,omitempty"`
	FetchedAt      time.Time `json:"fetched_at"`
}

// EventCard is a single announced event: an image plus nearby text.
type EventCard struct {
	Title       string  `json:"title"`
	ImageURL    string  `json:"image_url"`
	Description *string `json:"description,omitempty"`
}

// Events is the content of the events page.
type Events struct {
	Cards     []EventCard `json:"cards,omitempty"`
	FetchedAt time.Time   `json:"fetched_at"`
}

// Bookstore is the content of the bookstore page.
type Bookstore struct {
	Intro     *string     `json:"intro,omitempty"`
	Items     []EventCard `json:"items,omitempty"`
	FetchedAt time.Time   `json:"fetched_at"`
}

// PaymentMethod describes one way to donate.
type PaymentMethod struct {
	Instruction *string `json:"instruction,omitempty"`
	URL         *string `json:"url,omitempty"`
	Note        *string `json:"note,omitempty"`
}

// Donation is the content of the donation page.
type Donation struct {
	ZelleEmail    *string        `json:"zelle_email,omitempty"`
	Zelle         *PaymentMethod `json:"zelle,omitempty"`
	Check         *PaymentMethod `json:"check,omitempty"`
	PayPal        *PaymentMethod `json:"paypal,omitempty"`
	CreditCard    *PaymentMethod `json:"credit_card,omitempty"`
	MatchingGrant *PaymentMethod `json:"matching_grant,omitempty"`
	FetchedAt     time.Time      `json:"fetched_at"`
}

// Admissions is the content of the admissions page, one field per
// roman-numeral section of the source text.
type Admissions struct {
	NewAdmissions *string   `json:"new_admissions,omitempty"` // section I
	Waitlist      *string   `json:"waitlist,omitempty"`       // section II
	Documents     *string   `json:"documents,omitempty"`      // section III
	Withdrawal    *string   `json:"withdrawal,omitempty"`     // section IV
	FetchedAt     time.Time `json:"fetched_at"`
}

// Contact is the content of the contact page.
type Contact struct {
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	FormLinks []string  `json:"form_links,omitempty"`
	Emails    []string  `json:"emails,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// ClassSection is one class listing: a name plus optional schedule and
// description text.
type ClassSection struct {
	Name        string  `json:"name"`
	Schedule    *string `json:"schedule,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Classes is the content of the class-listing pages.
type Classes struct {
	Curricular []ClassSection `json:"curricular,omitempty"`
	Music      []ClassSection `json:"music,omitempty"`
	Camp       []ClassSection `json:"camp,omitempty"`
	FetchedAt  time.Time      `json:"fetched_at"`
}

// EventFlags categorize a panchang event.
type EventFlags struct {
	Institution      bool `json:"institution"`
	PublicHoliday    bool `json:"public_holiday"`
	RegionalCalendar bool `json:"regional_calendar"`
}

// PanchangEvent is one dated calendar event.
type PanchangEvent struct {
	Date        Date       `json:"date"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Flags       EventFlags `json:"flags"`
}

// Calendar groups panchang events by year*100+month.
type Calendar struct {
	Months    map[int][]PanchangEvent `json:"months,omitempty"`
	FetchedAt time.Time               `json:"fetched_at"`
}
