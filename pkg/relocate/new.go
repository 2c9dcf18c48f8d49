package relocate

import (
	"time"

	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
)

// Relocator moves processed files into the destination directory.
// An empty destination disables relocation entirely.
type Relocator struct {
	dest string
	now  func() time.Time
	log  *zap.SugaredLogger
}

func New(opts ...Opt) (ret *Relocator, err error) {
	defer Wrap(&err, "create file relocator")

	r := &Relocator{}
	for i := range opts {
		r, err = opts[i](r)
		if err != nil {
			return
		}
	}

	if r.log == nil {
		r.log = zap.NewNop().Sugar()
	}

	if r.now == nil {
		r.now = time.Now
	}

	ret = r

	r.log.Debugw("Create a new file relocator.",
		"destination", r.dest,
	)

	return
}

type Opt func(r *Relocator) (ret *Relocator, err error)

func WithDestination(dest string) Opt {
	return func(r *Relocator) (ret *Relocator, err error) {
		r.dest = dest
		ret = r
		return
	}
}

func WithClock(now func() time.Time) Opt {
	return func(r *Relocator) (ret *Relocator, err error) {
		if now == nil {
			err = ErrClockMissing
			return
		}

		r.now = now
		ret = r
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(r *Relocator) (ret *Relocator, err error) {
		r.log = log
		ret = r
		return
	}
}
