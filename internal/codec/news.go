package codec

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/newsboard/internal/models"
)

const (
	newsMinFields   = 10
	reviewMinFields = 6
)

// EncodeNews writes id, title, content, author, tags, images, likes, likedBy,
// createdAt, isDraft, status and the review block. The comment cache is not
// stored.
func EncodeNews(n models.News) string {
	fields := []string{
		Escape(n.ID),
		Escape(n.Title),
		Escape(n.Content),
		Escape(n.Author),
		EncodeList(n.Tags),
		EncodeList(n.Images),
		strconv.Itoa(n.Likes),
		EncodeList(n.LikedBy),
		formatMillis(n.CreatedAt),
		strconv.FormatBool(n.IsDraft),
		string(n.Status),
		Escape(EncodeReview(n.Review)),
	}
	return strings.Join(fields, string(fieldSep))
}

// EncodeReview renders the review block as a comma list, or "" for nil.
func EncodeReview(r *models.ReviewInfo) string {
	if r == nil {
		return ""
	}
	reviewedAt := ""
	if r.ReviewedAt != nil {
		reviewedAt = formatMillis(*r.ReviewedAt)
	}
	return strings.Join([]string{
		formatMillis(r.SubmittedAt),
		reviewedAt,
		escapeItem(r.ReviewerID),
		escapeItem(r.Comment),
		escapeItem(string(r.AIVerdict)),
		escapeItem(r.AIRationale),
	}, string(listSep))
}

// DecodeNews parses a news line. Rows written before moderation existed have
// no status and are treated as approved; a draft row always decodes as DRAFT.
func DecodeNews(line string) (models.News, bool) {
	parts := Split(line, fieldSep)
	if len(parts) < newsMinFields {
		return models.News{}, false
	}

	n := models.News{
		ID:        Unescape(parts[0]),
		Title:     Unescape(parts[1]),
		Content:   Unescape(parts[2]),
		Author:    Unescape(parts[3]),
		Tags:      DecodeList(parts[4]),
		Images:    DecodeList(parts[5]),
		Likes:     intOrZero(parts[6]),
		LikedBy:   DecodeList(parts[7]),
		CreatedAt: millisOrNow(parts[8]),
		IsDraft:   parts[9] == "true",
		Status:    models.StatusApproved,
	}
	if n.ID == "" {
		return models.News{}, false
	}

	if len(parts) > 10 {
		if st, err := models.ParseStatus(parts[10]); err == nil {
			n.Status = st
		}
	}
	if n.IsDraft {
		n.Status = models.StatusDraft
	}

	if len(parts) > 11 && parts[11] != "" {
		n.Review = DecodeReview(Unescape(parts[11]))
	}

	return n, true
}

// DecodeReview parses an unescaped review block. Blocks with fewer than six
// parts yield nil.
func DecodeReview(block string) *models.ReviewInfo {
	rp := Split(block, listSep)
	if len(rp) < reviewMinFields {
		return nil
	}

	r := &models.ReviewInfo{
		SubmittedAt: millisOrNow(rp[0]),
		ReviewerID:  Unescape(rp[2]),
		Comment:     Unescape(rp[3]),
		AIRationale: Unescape(rp[5]),
	}
	if t, ok := parseMillis(rp[1]); ok {
		r.ReviewedAt = &t
	}
	if v, err := models.ParseVerdict(Unescape(rp[4])); err == nil {
		r.AIVerdict = v
	}
	return r
}
