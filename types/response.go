package types

import "encoding/xml"

// APIResponse is the registrar's namespaced XML envelope.
type APIResponse struct {
	XMLName         xml.Name        `xml:"ApiResponse"`
	Status          string          `xml:"Status,attr"`
	Errors          []APIError      `xml:"Errors>Error"`
	CommandResponse CommandResponse `xml:"CommandResponse"`
}

type APIError struct {
	Number  string `xml:"Number,attr"`
	Message string `xml:",chardata"`
}

type CommandResponse struct {
	Domains []DomainElement `xml:"DomainGetListResult>Domain"`
	Paging  PagingElement   `xml:"Paging"`
}

// DomainElement carries the raw per-domain attributes; boolean
// attributes stay strings here and are true only for the literal "true".
type DomainElement struct {
	ID         string `xml:"ID,attr"`
	Name       string `xml:"Name,attr"`
	User       string `xml:"User,attr"`
	Created    string `xml:"Created,attr"`
	Expires    string `xml:"Expires,attr"`
	IsExpired  string `xml:"IsExpired,attr"`
	IsLocked   string `xml:"IsLocked,attr"`
	AutoRenew  string `xml:"AutoRenew,attr"`
	WhoisGuard string `xml:"WhoisGuard,attr"`
	IsPremium  string `xml:"IsPremium,attr"`
	IsOurDNS   string `xml:"IsOurDNS,attr"`
}

type PagingElement struct {
	TotalItems  int `xml:"TotalItems"`
	CurrentPage int `xml:"CurrentPage"`
	PageSize    int `xml:"PageSize"`
}
