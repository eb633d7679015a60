package rendering

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/letter-studio/internal/composer"
	"github.com/jonathan/letter-studio/internal/types"
)

// ContentFromHTML reads the letter sections back out of a page produced by
// RenderHTML. FullText is recomputed from the recovered sections.
func ContentFromHTML(html string) (*types.LetterContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &RenderError{Format: string(FormatHTML), Message: "failed to parse page", Cause: err}
	}

	letter := doc.Find("article.letter").First()
	if letter.Length() == 0 {
		return nil, &RenderError{Format: string(FormatHTML), Message: "no letter article in page"}
	}

	content := &types.LetterContent{
		HeaderLines:    []string{},
		BodyParagraphs: []string{},
		ClosingLines:   []string{},
		SubjectLine:    letter.Find(".letter-subject").First().Text(),
		Salutation:     letter.Find(".letter-salutation").First().Text(),
		GratitudeLine:  letter.Find(".letter-body .gratitude").First().Text(),
	}

	letter.Find(".letter-header").Children().Each(func(_ int, s *goquery.Selection) {
		if s.HasClass("spacer") {
			content.HeaderLines = append(content.HeaderLines, "")
			return
		}
		content.HeaderLines = append(content.HeaderLines, s.Text())
	})
	letter.Find(".letter-body .paragraph").Each(func(_ int, s *goquery.Selection) {
		content.BodyParagraphs = append(content.BodyParagraphs, s.Text())
	})
	letter.Find(".letter-closing .line").Each(func(_ int, s *goquery.Selection) {
		content.ClosingLines = append(content.ClosingLines, s.Text())
	})

	content.FullText = composer.FullText(content)
	return content, nil
}

// PlainTextFromHTML returns the plain-text form of a rendered letter page.
func PlainTextFromHTML(html string) (string, error) {
	content, err := ContentFromHTML(html)
	if err != nil {
		return "", err
	}
	return content.FullText, nil
}
