package namecheap

import (
	"encoding/xml"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/frankwiersma/namecheap-checker/pkg/consts"
	"github.com/frankwiersma/namecheap-checker/types"
	"github.com/frankwiersma/namecheap-checker/utils"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const Name = "namecheap"

// Client talks to the namecheap xml api.
type Client struct {
	APIKey   string
	APIUser  string
	ClientIP string
	ListType string
	Endpoint string
	DumpPath string

	resty *resty.Client
}

func NewClient(apiKey, apiUser, clientIP, listType string) *Client {
	return &Client{
		APIKey:   apiKey,
		APIUser:  apiUser,
		ClientIP: clientIP,
		ListType: listType,
		Endpoint: consts.APIEndpoint,
		DumpPath: consts.ResponseDumpFile,
		resty:    resty.New(),
	}
}

// ListDomains issues the single getList call and returns the portfolio.
// Transport-level or api-level failures are logged and yield an empty
// result; only a malformed response body is returned as an error.
func (c *Client) ListDomains() ([]types.Domain, *types.Paging, error) {
	params := map[string]string{
		"ApiUser":  c.APIUser,
		"ApiKey":   c.APIKey,
		"UserName": c.APIUser,
		"Command":  consts.APICommand,
		"ClientIp": c.ClientIP,
		"ListType": c.ListType,
		"Page":     consts.PageNumber,
		"PageSize": consts.PageSize,
		"SortBy":   consts.SortBy,
	}

	logrus.Debug("making api request with parameters:")
	for k, v := range params {
		if k == "ApiKey" {
			v = utils.MaskKey(v)
		}
		logrus.Debugf("%s: %s", k, v)
	}

	resp, err := c.resty.R().SetQueryParams(params).Get(c.Endpoint)
	if err != nil {
		logrus.Errorf("api request failed: %v", err)
		return nil, nil, nil
	}

	logrus.Infof("api response status code: %d", resp.StatusCode())

	if resp.StatusCode() != http.StatusOK {
		logrus.Errorf("unexpected status %d: %s", resp.StatusCode(), resp.String())
		return nil, nil, nil
	}

	if err := ioutil.WriteFile(c.DumpPath, resp.Body(), 0644); err != nil {
		logrus.Warnf("failed to save response to %s: %v", c.DumpPath, err)
	} else {
		logrus.Infof("response saved to %s for debugging", c.DumpPath)
	}

	return Parse(resp.Body())
}

// Parse decodes the namespaced envelope into domain records plus the
// paging summary. An api-level error envelope yields an empty result
// with its error codes logged.
func Parse(raw []byte) ([]types.Domain, *types.Paging, error) {
	api := &types.APIResponse{}
	if err := xml.Unmarshal(raw, api); err != nil {
		return nil, nil, errors.Wrap(err, "failed to decode api response")
	}

	if api.Status != consts.StatusOK {
		for _, e := range api.Errors {
			number := e.Number
			if number == "" {
				number = "Unknown"
			}
			logrus.Errorf("api error %s: %s", number, strings.TrimSpace(e.Message))
		}
		return nil, nil, nil
	}

	elements := api.CommandResponse.Domains
	logrus.Infof("found %d domains in response", len(elements))

	domains := make([]types.Domain, 0, len(elements))
	for _, d := range elements {
		domains = append(domains, types.Domain{
			ID:         d.ID,
			Name:       d.Name,
			User:       d.User,
			Created:    d.Created,
			Expires:    d.Expires,
			IsExpired:  d.IsExpired == "true",
			IsLocked:   d.IsLocked == "true",
			AutoRenew:  d.AutoRenew == "true",
			WhoisGuard: d.WhoisGuard,
			IsPremium:  d.IsPremium == "true",
			IsOurDNS:   d.IsOurDNS == "true",
		})
	}

	paging := &types.Paging{
		TotalItems:  api.CommandResponse.Paging.TotalItems,
		CurrentPage: api.CommandResponse.Paging.CurrentPage,
		PageSize:    api.CommandResponse.Paging.PageSize,
	}

	return domains, paging, nil
}
