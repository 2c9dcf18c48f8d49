package config_test

import (
	"testing"

	. "github.com/black-desk/lib/go/ginkgo-helper"
	. "github.com/black-desk/lib/go/gomega-helper"
	"github.com/go-playground/validator/v10"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hotfolder/hotfolder/pkg/hotfolder/config"
)

var _ = Describe("Configuration", func() {
	Context("load from the default configuration", func() {
		It("should success.", func() {
			cfg, err := config.New(
				config.WithContent([]byte(config.DefaultConfig)),
			)
			Expect(err).To(Succeed())
			Expect(string(cfg.WatchDir)).NotTo(BeEmpty())
			Expect(string(cfg.MoveTo)).NotTo(BeEmpty())
			Expect(cfg.Print).To(BeFalse())
		})
	})

	ContextTable("load from invalid configuration (%s)",
		ContextTableEntry(`
version: "2"
watch-dir: /tmp/hotfolder-test/in
`,
			validator.ValidationErrors{}, "validator.ValidationErrors",
		).WithFmt("version mismatch"),
		ContextTableEntry(`
version: "1"
watch-dir: /tmp/hotfolder-test/in
move-to: /tmp/hotfolder-test/in
`,
			config.ErrSameDirectory, "ErrSameDirectory",
		).WithFmt("watch and destination identical"),
		func(content string, expectErr error, errString string) {
			var err error

			BeforeEach(func() {
				_, err = config.New(config.WithContent([]byte(content)))
			})

			It("should fail with error: "+errString, func() {
				Expect(err).To(MatchErr(expectErr))
			})
		})

	Context("positional arguments", func() {
		It("should override the file values", func() {
			cfg, err := config.New(
				config.WithContent([]byte(config.DefaultConfig)),
				config.WithArgs([]string{
					"/tmp/hotfolder-test/watch",
					"/tmp/hotfolder-test/done",
					"print",
				}),
			)
			Expect(err).To(Succeed())
			Expect(string(cfg.WatchDir)).To(Equal("/tmp/hotfolder-test/watch"))
			Expect(string(cfg.MoveTo)).To(Equal("/tmp/hotfolder-test/done"))
			Expect(cfg.Print).To(BeTrue())
		})

		It("should enable printing only for `print` or `true`", func() {
			for flag, expected := range map[string]bool{
				"print": true,
				"true":  true,
				"TRUE":  true,
				"yes":   false,
				"":      false,
			} {
				cfg, err := config.New(
					config.WithContent([]byte(config.DefaultConfig)),
					config.WithArgs([]string{
						"/tmp/hotfolder-test/watch",
						"/tmp/hotfolder-test/done",
						flag,
					}),
				)
				Expect(err).To(Succeed())
				Expect(cfg.Print).To(Equal(expected), "flag %q", flag)
			}
		})

		It("should disable relocation for an empty destination", func() {
			cfg, err := config.New(
				config.WithContent([]byte(config.DefaultConfig)),
				config.WithArgs([]string{
					"/tmp/hotfolder-test/watch",
					"",
				}),
			)
			Expect(err).To(Succeed())
			Expect(string(cfg.MoveTo)).To(BeEmpty())
		})

		It("should reject more than three arguments", func() {
			_, err := config.New(
				config.WithArgs([]string{"a", "b", "c", "d"}),
			)
			Expect(err).To(MatchErr(config.ErrTooManyArguments))
		})
	})
})

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Configuration Suite")
}
