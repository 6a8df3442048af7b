package check

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/frankwiersma/namecheap-checker/pkg/consts"
	"github.com/frankwiersma/namecheap-checker/registrar/namecheap"
	"github.com/frankwiersma/namecheap-checker/report"
	"github.com/frankwiersma/namecheap-checker/types"
	"github.com/frankwiersma/namecheap-checker/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func Flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "api-key, k",
			EnvVar: consts.EnvAPIKey,
			Usage:  "used to set namecheap api key.",
		},
		cli.StringFlag{
			Name:   "api-user, u",
			EnvVar: consts.EnvAPIUser,
			Usage:  "used to set namecheap api username.",
		},
		cli.StringFlag{
			Name:   "client-ip, i",
			EnvVar: consts.EnvClientIP,
			Usage:  "used to set the whitelisted caller ip address.",
		},
		cli.StringFlag{
			Name:  "list-type, t",
			Usage: "used to set domain list type (ALL, EXPIRING, EXPIRED).",
			Value: consts.ListTypeAll,
		},
		cli.BoolFlag{
			Name:  "check-ns, n",
			Usage: "used to verify delegated nameservers against the registrar dns flag.",
		},
	}
}

func Action(c *cli.Context) error {
	if c.GlobalBool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	apiKey := c.String("api-key")
	apiUser := c.String("api-user")
	clientIP := c.String("client-ip")
	if apiKey == "" || apiUser == "" || clientIP == "" {
		return errors.Errorf("missing required configuration: set %s, %s and %s",
			consts.EnvAPIKey, consts.EnvAPIUser, consts.EnvClientIP)
	}

	fmt.Println("Namecheap Domain Checker")
	fmt.Println(strings.Repeat("=", 30))
	fmt.Printf("Username: %s\n", apiUser)
	fmt.Printf("Client IP: %s\n", clientIP)
	fmt.Printf("Time: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Println(strings.Repeat("=", 30))
	fmt.Println("Fetching domains from Namecheap...")

	client := namecheap.NewClient(apiKey, apiUser, clientIP, c.String("list-type"))

	start := time.Now()
	domains, paging, err := client.ListDomains()
	if err != nil {
		return errors.Wrap(err, "failed to list domains")
	}
	fmt.Printf("Time taken: %.2f seconds\n", time.Since(start).Seconds())

	r := report.New(os.Stdout)
	r.Write(domains, paging)

	if c.Bool("check-ns") {
		checkNameservers(domains)
	}

	return nil
}

// checkNameservers resolves delegated nameservers one domain at a time
// and flags records whose registrar dns flag disagrees with the
// delegation found in public dns. Lookup failures are warnings only.
func checkNameservers(domains []types.Domain) {
	if len(domains) == 0 {
		return
	}

	fmt.Println("\n--- Nameserver Check ---")
	for _, d := range domains {
		servers, err := utils.LookupNS(d.Name)
		if err != nil {
			logrus.Warnf("nameserver lookup failed for %s: %v", d.Name, err)
			continue
		}

		delegated := utils.IsRegistrarNS(servers)
		marker := "ok"
		if delegated != d.IsOurDNS {
			marker = "MISMATCH"
		}
		fmt.Printf("%-30s registrar dns: %-3s delegated to registrar: %-3s [%s]\n",
			d.Name, utils.YesNo(d.IsOurDNS), utils.YesNo(delegated), marker)
		fmt.Printf("  %s\n", strings.Join(servers, ", "))
	}
}
