package relocate_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hotfolder/hotfolder/pkg/relocate"
)

var _ = Describe("File relocator", func() {
	var (
		srcDir  string
		destDir string
		err     error
	)

	BeforeEach(func() {
		srcDir, err = os.MkdirTemp("", "relocate-src-*")
		Expect(err).To(Succeed())

		destDir, err = os.MkdirTemp("", "relocate-dest-*")
		Expect(err).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(srcDir)).To(Succeed())
		Expect(os.RemoveAll(destDir)).To(Succeed())
	})

	writeSrc := func(name string, content string) string {
		path := filepath.Join(srcDir, name)
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	Context("with a destination", func() {
		It("moves the file under its original name", func() {
			r, err := relocate.New(
				relocate.WithDestination(destDir),
			)
			Expect(err).To(Succeed())

			path := writeSrc("note.txt", "hello world!")

			Expect(r.Relocate(path, "note.txt")).To(Succeed())

			Expect(path).NotTo(BeAnExistingFile())
			moved := filepath.Join(destDir, "note.txt")
			Expect(moved).To(BeAnExistingFile())

			content, err := os.ReadFile(moved)
			Expect(err).To(Succeed())
			Expect(string(content)).To(Equal("hello world!"))
		})

		It("creates a missing destination directory", func() {
			nested := filepath.Join(destDir, "a", "b")
			r, err := relocate.New(
				relocate.WithDestination(nested),
			)
			Expect(err).To(Succeed())

			path := writeSrc("note.txt", "x")

			Expect(r.Relocate(path, "note.txt")).To(Succeed())
			Expect(filepath.Join(nested, "note.txt")).To(BeAnExistingFile())
		})

		It("renames with a timestamp on collision and leaves the existing file untouched", func() {
			stamp := time.Date(2026, 8, 24, 13, 5, 7, 0, time.UTC)
			r, err := relocate.New(
				relocate.WithDestination(destDir),
				relocate.WithClock(func() time.Time { return stamp }),
			)
			Expect(err).To(Succeed())

			existing := filepath.Join(destDir, "report.txt")
			Expect(os.WriteFile(existing, []byte("existing"), 0o644)).To(Succeed())

			path := writeSrc("report.txt", "incoming")

			Expect(r.Relocate(path, "report.txt")).To(Succeed())

			content, err := os.ReadFile(existing)
			Expect(err).To(Succeed())
			Expect(string(content)).To(Equal("existing"))

			renamed := filepath.Join(destDir, "report_2026-08-24_13-05-07.txt")
			Expect(renamed).To(BeAnExistingFile())

			content, err = os.ReadFile(renamed)
			Expect(err).To(Succeed())
			Expect(string(content)).To(Equal("incoming"))
		})

		It("keeps both files of a collision pair in the destination", func() {
			r, err := relocate.New(
				relocate.WithDestination(destDir),
			)
			Expect(err).To(Succeed())

			first := writeSrc("a.txt", "one")
			Expect(r.Relocate(first, "a.txt")).To(Succeed())

			second := writeSrc("a.txt", "two")
			Expect(r.Relocate(second, "a.txt")).To(Succeed())

			entries, err := os.ReadDir(destDir)
			Expect(err).To(Succeed())
			Expect(entries).To(HaveLen(2))
		})
	})

	Context("without a destination", func() {
		It("leaves the file in place", func() {
			r, err := relocate.New()
			Expect(err).To(Succeed())

			path := writeSrc("note.txt", "stay")

			Expect(r.Relocate(path, "note.txt")).To(Succeed())
			Expect(path).To(BeAnExistingFile())
		})
	})

	Context("with an unusable source", func() {
		It("fails and the destination stays clean", func() {
			r, err := relocate.New(
				relocate.WithDestination(destDir),
			)
			Expect(err).To(Succeed())

			err = r.Relocate(filepath.Join(srcDir, "missing.txt"), "missing.txt")
			Expect(err).To(HaveOccurred())

			entries, err := os.ReadDir(destDir)
			Expect(err).To(Succeed())
			Expect(entries).To(BeEmpty())
		})
	})
})

func TestRelocate(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "File Relocator Suite")
}
