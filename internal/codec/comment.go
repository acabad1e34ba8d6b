package codec

import (
	"strings"

	"github.com/dmitrijs2005/newsboard/internal/models"
)

const commentMinFields = 5

func EncodeComment(c models.Comment) string {
	return strings.Join([]string{
		Escape(c.ID),
		Escape(c.NewsID),
		Escape(c.Author),
		Escape(c.Content),
		formatMillis(c.CreatedAt),
	}, string(fieldSep))
}

func DecodeComment(line string) (models.Comment, bool) {
	parts := Split(line, fieldSep)
	if len(parts) < commentMinFields {
		return models.Comment{}, false
	}
	c := models.Comment{
		ID:        Unescape(parts[0]),
		NewsID:    Unescape(parts[1]),
		Author:    Unescape(parts[2]),
		Content:   Unescape(parts[3]),
		CreatedAt: millisOrNow(parts[4]),
	}
	if c.ID == "" {
		return models.Comment{}, false
	}
	return c, true
}
