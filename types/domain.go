package types

import "time"

// Domain is one registered domain as reported by the registrar.
type Domain struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	User       string `json:"user,omitempty"`
	Created    string `json:"created,omitempty"`
	Expires    string `json:"expires"`
	IsExpired  bool   `json:"is_expired"`
	IsLocked   bool   `json:"is_locked"`
	AutoRenew  bool   `json:"auto_renew"`
	WhoisGuard string `json:"whois_guard,omitempty"`
	IsPremium  bool   `json:"is_premium"`
	IsOurDNS   bool   `json:"is_our_dns"`

	// ExpiryDate is derived from Expires at report time,
	// nil when the raw value matches none of the accepted formats.
	ExpiryDate *time.Time `json:"-"`
}

// Paging is the registrar's report of how many records exist
// versus how many were returned in this page.
type Paging struct {
	TotalItems  int `json:"total_items"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}
