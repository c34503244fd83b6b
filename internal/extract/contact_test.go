package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactPhoneAndAddress(t *testing.T) {
	doc := parse(t, `
		<p>Call us at (408) 555-1234 during office hours.</p>
		<table>
			<tr><td>Address:<br>123 Temple Road<br>San Jose, CA 95110</td></tr>
		</table>`)

	rec, err := Contact(doc, testBase, extractedAt)
	require.NoError(t, err)

	require.NotNil(t, rec.Phone)
	assert.Equal(t, "(408) 555-1234", *rec.Phone)
	require.NotNil(t, rec.Address)
	assert.Equal(t, "123 Temple Road, San Jose, CA 95110", *rec.Address)
	assert.Equal(t, extractedAt, rec.FetchedAt)
}

func TestContactAddressFromNextCell(t *testing.T) {
	doc := parse(t, `
		<table>
			<tr><td>Address</td><td>456 Shrine Avenue<br>Fremont, CA 94536</td></tr>
		</table>`)

	rec, err := Contact(doc, testBase, extractedAt)
	require.NoError(t, err)

	require.NotNil(t, rec.Address)
	assert.Equal(t, "456 Shrine Avenue, Fremont, CA 94536", *rec.Address)
}

func TestContactEmails(t *testing.T) {
	doc := parse(t, `
		<a href="mailto:office@temple.org?subject=Hello">Email us</a>
		<a href="/cdn-cgi/l/email-protection#1c7a73735c7e7d6e327f7371">protected</a>
		<span data-cfemail="1c7a73735c7e7d6e327f7371"></span>
		<p>Reach the chairman at FOO@BAR.COM or chair@temple.org</p>`)

	rec, err := Contact(doc, testBase, extractedAt)
	require.NoError(t, err)

	// The decoded protected address dedups against both the data-cfemail
	// span and the upper-cased text mention.
	assert.Equal(t,
		[]string{"office@temple.org", "foo@bar.com", "chair@temple.org"},
		rec.Emails)
}

func TestContactFormLinks(t *testing.T) {
	doc := parse(t, `
		<a href="https://docs.google.com/forms/d/xyz">Register here</a>
		<a href="https://docs.google.com/forms/d/xyz?usp=share">Register again</a>
		<a href="https://forms.gle/abc">Quick signup</a>
		<a href="/contact-form">Contact Form</a>
		<a href="https://example.org/about">About the temple</a>`)

	rec, err := Contact(doc, testBase, extractedAt)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://docs.google.com/forms/d/xyz",
		"https://forms.gle/abc",
		"https://temple.org/contact-form",
	}, rec.FormLinks)
}

func TestContactEmptyPage(t *testing.T) {
	doc := parse(t, `<p>Visit us any weekend.</p>`)

	rec, err := Contact(doc, testBase, extractedAt)
	require.NoError(t, err)

	assert.Nil(t, rec.Phone)
	assert.Nil(t, rec.Address)
	assert.Empty(t, rec.FormLinks)
	assert.Empty(t, rec.Emails)
}
