package hotfolder_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hotfolder/hotfolder/pkg/hotfolder"
	"github.com/hotfolder/hotfolder/pkg/hotfolder/config"
	"github.com/hotfolder/hotfolder/pkg/types"
)

type blockingMonitor struct {
	events chan types.FileEvent
}

func (m *blockingMonitor) RunDirMonitor(ctx context.Context) error {
	defer close(m.events)
	<-ctx.Done()
	return context.Cause(ctx)
}

func (m *blockingMonitor) Events() <-chan types.FileEvent {
	return m.events
}

type drainingProcessor struct {
	events <-chan types.FileEvent
}

func (p *drainingProcessor) RunDocProcessor(ctx context.Context) error {
	for range p.events {
	}
	return context.Cause(ctx)
}

var _ = Describe("Hotfolder core", func() {
	var cfg *config.Config

	BeforeEach(func() {
		var err error
		cfg, err = config.New(
			config.WithContent([]byte(config.DefaultConfig)),
		)
		Expect(err).To(Succeed())
	})

	It("requires its components", func() {
		_, err := hotfolder.New(
			hotfolder.WithConfig(cfg),
		)
		Expect(err).To(MatchError(hotfolder.ErrDirMonitorMissing))
	})

	It("propagates the stop cause out of Run", func() {
		mon := &blockingMonitor{events: make(chan types.FileEvent)}
		proc := &drainingProcessor{events: mon.Events()}

		h, err := hotfolder.New(
			hotfolder.WithConfig(cfg),
			hotfolder.WithDirMonitor(mon),
			hotfolder.WithDocProcessor(proc),
		)
		Expect(err).To(Succeed())

		cause := errors.New("operator asked to stop")

		done := make(chan error, 1)
		go func() {
			done <- h.Run()
		}()

		h.Stop(cause)

		var runErr error
		Eventually(done, "2s").Should(Receive(&runErr))
		Expect(runErr).To(MatchError(cause))
	})
})

func TestHotfolder(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Hotfolder Core Suite")
}
