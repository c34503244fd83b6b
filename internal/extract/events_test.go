package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsTableRows(t *testing.T) {
	doc := parse(t, `
		<table>
			<tr>
				<td><img src="/img/diwali.jpg" width="400"></td>
				<td><b>Diwali Celebration</b><br>Lakshmi puja at 6 PM<br>Dinner follows</td>
			</tr>
			<tr>
				<td><img src="/img/annual.png" width="400"></td>
				<td>Annual Day on April 12</td>
			</tr>
		</table>`)

	rec, err := Events(doc, testBase, extractedAt)
	require.NoError(t, err)
	require.Len(t, rec.Cards, 2)

	first := rec.Cards[0]
	assert.Equal(t, "Diwali Celebration", first.Title)
	assert.Equal(t, "https://temple.org/img/diwali.jpg", first.ImageURL)
	require.NotNil(t, first.Description)
	assert.Equal(t, "Lakshmi puja at 6 PM Dinner follows", *first.Description)

	second := rec.Cards[1]
	assert.Equal(t, "Annual Day on April 12", second.Title)
	assert.Nil(t, second.Description)
	assert.Equal(t, extractedAt, rec.FetchedAt)
}

func TestEventsDuplicateImagesCollapse(t *testing.T) {
	// Same image with different tracking params: only one event.
	doc := parse(t, `
		<table>
			<tr>
				<td><img src="/img/a.jpg?x=1" width="400"></td>
				<td>Festival announcement one</td>
			</tr>
			<tr>
				<td><img src="/img/a.jpg?x=2" width="400"></td>
				<td>Festival announcement two</td>
			</tr>
		</table>`)

	rec, err := Events(doc, testBase, extractedAt)
	require.NoError(t, err)
	require.Len(t, rec.Cards, 1)
	assert.Equal(t, "Festival announcement one", rec.Cards[0].Title)
}

func TestEventsRowsRequireContentImage(t *testing.T) {
	doc := parse(t, `
		<table>
			<tr><td><img src="/logo.png" width="400"></td><td>Not a real event row</td></tr>
			<tr><td>No image at all in this row</td></tr>
		</table>
		<p>no fallback material here</p>`)

	rec, err := Events(doc, testBase, extractedAt)
	require.NoError(t, err)
	assert.Empty(t, rec.Cards)
}

func TestEventsShortCellSkipped(t *testing.T) {
	doc := parse(t, `
		<table>
			<tr>
				<td><img src="/img/a.jpg" width="400"></td>
				<td>short</td>
				<td>This cell is long enough to use</td>
			</tr>
		</table>`)

	rec, err := Events(doc, testBase, extractedAt)
	require.NoError(t, err)
	require.Len(t, rec.Cards, 1)
	assert.Equal(t, "This cell is long enough to use", rec.Cards[0].Title)
}

func TestEventsImageProximityFallback(t *testing.T) {
	// No table rows: pass two walks ancestors of each content image.
	doc := parse(t, `
		<div class="event-block">
			<img data-src="/img/ganesh.jpg" width="400">
			<p>Ganesh Chaturthi Pooja</p>
			<p>September 14 in the main hall</p>
		</div>`)

	rec, err := Events(doc, testBase, extractedAt)
	require.NoError(t, err)
	require.Len(t, rec.Cards, 1)

	card := rec.Cards[0]
	assert.Equal(t, "Ganesh Chaturthi Pooja", card.Title)
	assert.Equal(t, "https://temple.org/img/ganesh.jpg", card.ImageURL)
	require.NotNil(t, card.Description)
	assert.Equal(t, "September 14 in the main hall", *card.Description)
}

func TestEventsFallbackNeedsEnoughText(t *testing.T) {
	doc := parse(t, `<div><img src="/img/a.jpg" width="400"><p>tiny</p></div>`)

	rec, err := Events(doc, testBase, extractedAt)
	require.NoError(t, err)
	assert.Empty(t, rec.Cards)
}
