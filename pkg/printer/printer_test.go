package printer_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hotfolder/hotfolder/pkg/printer"
)

type submission struct {
	cmd  string
	args []string
}

// fakeRunner records spool command invocations instead of running lp.
type fakeRunner struct {
	mu   sync.Mutex
	jobs []submission
	fail error
}

func (f *fakeRunner) run(ctx context.Context, name string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail != nil {
		return f.fail
	}

	f.jobs = append(f.jobs, submission{cmd: name, args: args})
	return nil
}

func (f *fakeRunner) submissions() []submission {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]submission{}, f.jobs...)
}

var _ = Describe("Printer sink", func() {
	var (
		runner *fakeRunner
		sink   *printer.Printer
		err    error
	)

	BeforeEach(func() {
		runner = &fakeRunner{}

		sink, err = printer.New(
			printer.WithSpoolCommand("lp"),
			printer.WithRunner(runner.run),
			printer.WithCleanupDelay(50*time.Millisecond),
		)
		Expect(err).To(Succeed())
	})

	Context("printing the original document", func() {
		It("submits the file path to the spool command", func() {
			err = sink.PrintFile(context.Background(), "/watch/report.pdf")
			Expect(err).To(Succeed())

			jobs := runner.submissions()
			Expect(jobs).To(HaveLen(1))
			Expect(jobs[0].cmd).To(Equal("lp"))
			Expect(jobs[0].args).To(ConsistOf("/watch/report.pdf"))
		})

		It("surfaces submission failures", func() {
			runner.fail = errors.New("no default destination")

			err = sink.PrintFile(context.Background(), "/watch/report.pdf")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("printing rendered text", func() {
		It("spools the text through a temporary file and cleans it up", func() {
			err = sink.PrintText(context.Background(), "note.txt", "hello world!")
			Expect(err).To(Succeed())

			jobs := runner.submissions()
			Expect(jobs).To(HaveLen(1))
			Expect(jobs[0].args).To(HaveLen(1))

			spoolPath := jobs[0].args[0]
			content, err := os.ReadFile(spoolPath)
			Expect(err).To(Succeed())
			Expect(string(content)).To(Equal("hello world!"))

			Eventually(func() bool {
				_, statErr := os.Stat(spoolPath)
				return os.IsNotExist(statErr)
			}, "2s").Should(BeTrue())
		})

		It("does not leave the spool file behind on failure", func() {
			runner.fail = errors.New("spooler gone")

			err = sink.PrintText(context.Background(), "note.txt", "hello")
			Expect(err).To(HaveOccurred())

			Eventually(func() int {
				matches, _ := os.ReadDir(os.TempDir())
				count := 0
				for _, m := range matches {
					if !m.IsDir() && len(m.Name()) > 9 &&
						m.Name()[:10] == "hotfolder-" {
						count++
					}
				}
				return count
			}, "2s").Should(BeZero())
		})
	})
})

func TestPrinter(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Printer Sink Suite")
}
