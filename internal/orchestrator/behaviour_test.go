package orchestrator_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/golife/internal/command"
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/orchestrator"
	"github.com/san-kum/golife/internal/pattern"
)

type stoppedClock struct{ t time.Time }

func (c *stoppedClock) Now() time.Time { return c.t }

var _ = Describe("Orchestrator", func() {
	var (
		o     *orchestrator.Orchestrator
		clock *stoppedClock
	)

	press := func(keys ...string) {
		for _, k := range keys {
			quit, err := o.Dispatch(command.Key(k))
			Expect(err).NotTo(HaveOccurred())
			Expect(quit).To(BeFalse())
		}
	}

	BeforeEach(func() {
		clock = &stoppedClock{t: time.Unix(0, 0)}
		opts := orchestrator.DefaultOptions()
		opts.Clock = clock
		var err error
		o, err = orchestrator.New(pattern.Default(), orchestrator.FixedSize{Width: 12, Height: 8}, opts)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("placing the default blinker", func() {
		BeforeEach(func() {
			press("1")
		})

		It("stamps three cells at the cursor", func() {
			Expect(o.Grid().Population()).To(Equal(3))
			Expect(o.Frame().LastPattern).To(Equal("blinker"))
		})

		It("oscillates with period two while running", func() {
			start := o.Grid().Clone()
			for i := 1; i <= 2; i++ {
				clock.t = clock.t.Add(orchestrator.DefaultSimulationDelay + time.Millisecond)
				Expect(o.Tick(clock.t)).To(BeTrue())
			}
			Expect(o.Grid().Equal(start)).To(BeTrue())
			Expect(o.Generation()).To(Equal(2))
		})

		It("keeps a rotation for every later placement", func() {
			press("r", "p", "c", "1")
			at := o.GridCursor()
			for dy := 0; dy < 3; dy++ {
				h, _ := o.Grid().Cell(life.Coordinates{X: at.X, Y: at.Y + dy})
				Expect(h).To(Equal(life.Alive))
			}
		})
	})

	Context("with the help overlay open", func() {
		BeforeEach(func() {
			press("?")
		})

		It("swallows editing keys", func() {
			press("a", "1", "s", "c", "right")
			Expect(o.Mode()).To(Equal(command.ModeHelp))
			Expect(o.Grid().Population()).To(BeZero())
			Expect(o.Running()).To(BeTrue())
		})

		It("does not advance the simulation", func() {
			clock.t = clock.t.Add(time.Hour)
			Expect(o.Tick(clock.t)).To(BeFalse())
		})

		It("still quits", func() {
			quit, err := o.Dispatch(command.Key("ctrl+c"))
			Expect(err).NotTo(HaveOccurred())
			Expect(quit).To(BeTrue())
		})
	})

	Describe("Run", func() {
		It("drains a closed input stream and returns cleanly", func() {
			events := make(chan command.Event, 3)
			events <- command.Key("a")
			events <- command.Pointer(command.PointerPress, command.ButtonLeft, 0, 0)
			events <- command.Key("a")
			close(events)

			var frames []orchestrator.Frame
			Expect(o.Run(context.Background(), events, func(f orchestrator.Frame) {
				frames = append(frames, f)
			})).To(Succeed())

			Expect(frames).To(HaveLen(4))
			Expect(o.Grid().Population()).To(Equal(2))
			Expect(frames[len(frames)-1].Cells[0][0]).To(Equal(life.Alive))
		})
	})
})
