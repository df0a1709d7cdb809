package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const noAssignmentMarker = "You don't have any assignments at this time"

// HousingFields is the parsed content of a housing assignment page.
type HousingFields struct {
	House     string
	Room      string
	Address   string
	OffCampus bool
	StartYear int
	EndYear   int
}

// Housing parses the housing assignment page. A page without an
// assignment marks the account off campus; the academic year is then
// derived from now, since assignments for the year are published in
// January. Otherwise the page carries an "Academic Year" header, a
// "House Information" header, and a content block with room and
// address paragraphs.
func Housing(raw string, now time.Time) (*HousingFields, error) {
	if strings.Contains(raw, noAssignmentMarker) {
		start := now.Year()
		if now.Month() <= time.January {
			start = now.Year() - 1
		}
		return &HousingFields{OffCampus: true, StartYear: start, EndYear: start + 1}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, parseFailure("unable to parse housing document")
	}

	main := doc.Find("div.interior-main-content").First()
	if main.Length() == 0 {
		return nil, parseFailure("missing housing content region")
	}

	var yearText, houseText string
	main.Find("h3").Each(func(_ int, h *goquery.Selection) {
		text := h.Text()
		if strings.Contains(text, "Academic Year") {
			yearText = text
		} else if strings.Contains(text, "House Information") {
			houseText = text
		}
	})
	if yearText == "" || houseText == "" {
		return nil, parseFailure("missing housing headers")
	}

	info := main.Find("div.col-md-8").First()
	paragraphs := info.Find("p")
	if paragraphs.Length() < 2 {
		return nil, parseFailure("missing room and address blocks")
	}

	// The year header ends with "... <start> - <end>".
	tokens := strings.Fields(strings.TrimSpace(yearText))
	if len(tokens) < 3 {
		return nil, parseFailure("malformed academic year header")
	}
	start, err := strconv.Atoi(tokens[len(tokens)-3])
	if err != nil {
		return nil, parseFailure("malformed academic year header")
	}
	end, err := strconv.Atoi(tokens[len(tokens)-1])
	if err != nil {
		return nil, parseFailure("malformed academic year header")
	}

	houseSplit := strings.SplitN(houseText, "-", 2)
	if len(houseSplit) < 2 {
		return nil, parseFailure("malformed house header")
	}
	house := strings.TrimSpace(houseSplit[1])

	room := firstSegment(paragraphs.Eq(0).Text())
	address := firstSegment(paragraphs.Eq(1).Text())

	return &HousingFields{
		House:     house,
		Room:      room,
		Address:   address,
		StartYear: start,
		EndYear:   end,
	}, nil
}

// firstSegment returns the free-text lead of a paragraph whose
// trailing metadata is separated by a run of double spaces.
func firstSegment(text string) string {
	return strings.TrimSpace(strings.SplitN(strings.TrimSpace(text), "  ", 2)[0])
}
