package model

import (
	"fmt"
	"strings"
)

// Issue is an issue of a repository
type Issue struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
}

const (
	IssueStateOpen   = "open"
	IssueStateClosed = "closed"
	IssueStateAll    = "all"
)

func (x *Issue) Open() bool {
	return x.State == "" || x.State == IssueStateOpen
}

// IssueFingerprint identifies an issue across organizations. Issue numbers
// are reassigned on creation so only title and trimmed body are compared.
type IssueFingerprint struct {
	Title string
	Body  string
}

func (x *Issue) Fingerprint() IssueFingerprint {
	return IssueFingerprint{
		Title: x.Title,
		Body:  strings.TrimSpace(x.Body),
	}
}

// ProvenanceBody returns body with a footer linking back to sourceURL.
func ProvenanceBody(body, sourceURL, attribution string) string {
	footer := fmt.Sprintf("Forked from %s by %s", sourceURL, attribution)
	if body == "" {
		return footer
	}
	return body + "\n\n---\n" + footer
}

// ContainsIssue reports whether issues has an issue with the same fingerprint
// as candidate.
func ContainsIssue(issues []*Issue, candidate *Issue) bool {
	fp := candidate.Fingerprint()
	for _, issue := range issues {
		if issue.Fingerprint() == fp {
			return true
		}
	}
	return false
}
