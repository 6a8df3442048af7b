package check_test

import (
	"os"

	"github.com/frankwiersma/namecheap-checker/command/check"
	"github.com/frankwiersma/namecheap-checker/pkg/consts"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/urfave/cli"
)

var _ = Describe("check", func() {
	var expectEnvVars []string

	BeforeEach(func() {
		expectEnvVars = []string{
			consts.EnvAPIKey,
			consts.EnvAPIUser,
			consts.EnvClientIP,
		}
		for _, env := range expectEnvVars {
			os.Unsetenv(env)
		}
	})

	Describe("flags", func() {
		It("flags should carry the credential env vars", func() {
			envVars := make([]string, 0)
			for _, f := range check.Flags() {
				if sf, ok := f.(cli.StringFlag); ok && sf.EnvVar != "" {
					envVars = append(envVars, sf.EnvVar)
				}
			}
			Expect(envVars).To(ConsistOf(expectEnvVars))
		})

		It("list type should default to ALL", func() {
			var value string
			for _, f := range check.Flags() {
				if sf, ok := f.(cli.StringFlag); ok && sf.Name == "list-type, t" {
					value = sf.Value
				}
			}
			Expect(value).To(Equal(consts.ListTypeAll))
		})
	})

	Describe("action", func() {
		It("missing configuration should fail before any request", func() {
			app := cli.NewApp()
			app.Writer = os.Stderr
			app.Commands = []cli.Command{
				{
					Name:   "check",
					Flags:  check.Flags(),
					Action: check.Action,
				},
			}
			err := app.Run([]string{"namecheap-checker", "check"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(consts.EnvAPIKey))
		})
	})
})
