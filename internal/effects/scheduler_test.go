package effects

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoop(t *testing.T) {
	Convey("Given an event loop", t, func() {
		loop := NewLoop()
		defer loop.Close()

		Convey("When work is handed to it", func() {
			ran := false
			err := loop.Do(func() { ran = true })

			Convey("Then it runs before Do returns", func() {
				So(err, ShouldBeNil)
				So(ran, ShouldBeTrue)
			})
		})

		Convey("When a one-shot timer fires", func() {
			fired := make(chan struct{})
			loop.After(time.Millisecond, func() { close(fired) })

			Convey("Then its callback runs", func() {
				select {
				case <-fired:
				case <-time.After(time.Second):
					So("timeout", ShouldBeEmpty)
				}
			})
		})

		Convey("When callbacks come from several timers", func() {
			var mu sync.Mutex
			active, maxActive, count := 0, 0, 0
			done := make(chan struct{})
			for i := 0; i < 20; i++ {
				loop.After(time.Millisecond, func() {
					mu.Lock()
					active++
					if active > maxActive {
						maxActive = active
					}
					mu.Unlock()
					time.Sleep(100 * time.Microsecond)
					mu.Lock()
					active--
					count++
					if count == 20 {
						close(done)
					}
					mu.Unlock()
				})
			}
			<-done

			Convey("Then they never overlap", func() {
				So(maxActive, ShouldEqual, 1)
			})
		})

		Convey("When a periodic timer is stopped from its own callback", func() {
			ticks := 0
			stopped := make(chan struct{})
			var timer Timer
			_ = loop.Do(func() {
				timer = loop.Every(time.Millisecond, func() {
					ticks++
					if ticks == 3 {
						timer.Stop()
						close(stopped)
					}
				})
			})
			<-stopped
			time.Sleep(10 * time.Millisecond)

			Convey("Then it ticks no further", func() {
				var got int
				_ = loop.Do(func() { got = ticks })
				So(got, ShouldEqual, 3)
			})
		})

		Convey("When the loop is closed", func() {
			fired := make(chan struct{}, 1)
			loop.After(20*time.Millisecond, func() { fired <- struct{}{} })
			loop.Close()

			Convey("Then pending timers never fire and Do fails", func() {
				select {
				case <-fired:
					So("fired after close", ShouldBeEmpty)
				case <-time.After(50 * time.Millisecond):
				}
				So(errors.Is(loop.Do(func() {}), ErrLoopClosed), ShouldBeTrue)
			})

			Convey("And new timers are inert", func() {
				timer := loop.After(0, func() { fired <- struct{}{} })
				So(func() { timer.Stop() }, ShouldNotPanic)
			})
		})
	})
}

func TestLoopClose(t *testing.T) {
	Convey("Given loops closed while work is handed to them", t, func() {
		late := 0
		for i := 0; i < 500; i++ {
			loop := NewLoop()
			ran := false
			go loop.Close()
			err := loop.Do(func() { ran = true })
			loop.Close()
			if err != nil && ran {
				late++
			}
		}

		Convey("Then work refused by Do never runs", func() {
			So(late, ShouldEqual, 0)
		})
	})

	Convey("Given a callback in progress", t, func() {
		loop := NewLoop()
		entered := make(chan struct{})
		var finished atomic.Bool
		go func() {
			_ = loop.Do(func() {
				close(entered)
				time.Sleep(20 * time.Millisecond)
				finished.Store(true)
			})
		}()
		<-entered
		loop.Close()

		Convey("Then Close waits for it to return", func() {
			So(finished.Load(), ShouldBeTrue)
		})
	})
}

func TestVirtual(t *testing.T) {
	Convey("Given a virtual runtime", t, func() {
		v := NewVirtual()
		var order []string

		Convey("When timers share a due time", func() {
			v.After(10*time.Millisecond, func() { order = append(order, "a") })
			v.After(10*time.Millisecond, func() { order = append(order, "b") })
			v.After(5*time.Millisecond, func() { order = append(order, "first") })
			v.Advance(10 * time.Millisecond)

			Convey("Then they fire by due time, then by scheduling order", func() {
				So(order, ShouldResemble, []string{"first", "a", "b"})
				So(v.Now(), ShouldEqual, 10*time.Millisecond)
			})
		})

		Convey("When a callback schedules an immediate follow-up", func() {
			v.After(time.Millisecond, func() {
				order = append(order, "outer")
				v.After(0, func() { order = append(order, "inner") })
			})
			v.Advance(time.Millisecond)

			Convey("Then the follow-up runs within the same advance", func() {
				So(order, ShouldResemble, []string{"outer", "inner"})
			})
		})

		Convey("When it is closed", func() {
			v.After(time.Millisecond, func() { order = append(order, "late") })
			v.Close()
			v.Advance(time.Second)

			Convey("Then nothing fires and Do fails", func() {
				So(order, ShouldBeEmpty)
				So(errors.Is(v.Do(func() {}), ErrLoopClosed), ShouldBeTrue)
			})
		})
	})
}
