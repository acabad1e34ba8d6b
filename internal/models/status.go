// Package models defines the NewsBoard records and the small amount of
// behaviour that belongs to them.
package models

import (
	"fmt"
	"strings"
)

// Status is the moderation state of a news item.
type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// ParseStatus accepts the canonical upper-case names only.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.TrimSpace(s)); st {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return st, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// Label is the human readable status shown in listings.
func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusPending:
		return "under review"
	case StatusApproved:
		return "published"
	case StatusRejected:
		return "rejected"
	default:
		return string(s)
	}
}

// Verdict is the advisor's suggestion for a pending item.
type Verdict string

const (
	VerdictPass        Verdict = "pass"
	VerdictReject      Verdict = "reject"
	VerdictNeedsReview Verdict = "needs-review"
)

func ParseVerdict(s string) (Verdict, error) {
	switch v := Verdict(strings.ToLower(strings.TrimSpace(s))); v {
	case VerdictPass, VerdictReject, VerdictNeedsReview:
		return v, nil
	default:
		return "", fmt.Errorf("unknown verdict %q", s)
	}
}
