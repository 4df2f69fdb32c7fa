package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func openTestStore(t *testing.T, now *time.Time) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "folio.db"),
		WithClock(func() time.Time { return *now }))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestVisits(t *testing.T) {
	Convey("Given a store with visits spread over a year", t, func() {
		ctx := context.Background()
		now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		s := openTestStore(t, &now)

		at := func(offset time.Duration, ip, path string) {
			saved := now
			now = saved.Add(-offset)
			So(s.RecordVisit(ctx, ip, "test-agent", path), ShouldBeNil)
			now = saved
		}
		at(0, "aaaa", "/")
		at(2*time.Hour, "aaaa", "/")
		at(13*time.Hour, "bbbb", "/")
		at(3*24*time.Hour, "cccc", "/")
		at(400*24*time.Hour, "dddd", "/")

		Convey("Then stats count totals, uniques, today and this week", func() {
			stats, err := s.Stats(ctx)
			So(err, ShouldBeNil)
			So(stats.TotalVisitors, ShouldEqual, 5)
			So(stats.UniqueVisitors, ShouldEqual, 4)
			So(stats.VisitorsToday, ShouldEqual, 2)
			So(stats.VisitorsThisWeek, ShouldEqual, 4)
			So(stats.RecentVisitors, ShouldHaveLength, 5)
			So(stats.RecentVisitors[0].HashedIP, ShouldEqual, "aaaa")
		})

		Convey("When visits older than a year are pruned", func() {
			n, err := s.PruneVisits(ctx, 365*24*time.Hour)
			So(err, ShouldBeNil)

			Convey("Then only those rows go", func() {
				So(n, ShouldEqual, 1)
				visits, err := s.RecentVisits(ctx, 10)
				So(err, ShouldBeNil)
				So(visits, ShouldHaveLength, 4)
				for _, v := range visits {
					So(v.HashedIP, ShouldNotEqual, "dddd")
				}
			})
		})
	})
}

func TestMessages(t *testing.T) {
	Convey("Given an empty inbox", t, func() {
		ctx := context.Background()
		now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		s := openTestStore(t, &now)

		Convey("When messages arrive", func() {
			id1, err := s.SaveMessage(ctx, "Ada", "ada@example.com", "Hello")
			So(err, ShouldBeNil)
			now = now.Add(time.Minute)
			id2, err := s.SaveMessage(ctx, "Grace", "grace@example.com", "Hi there")
			So(err, ShouldBeNil)

			Convey("Then they are listed newest first", func() {
				So(id2, ShouldBeGreaterThan, id1)
				msgs, err := s.Messages(ctx, 10)
				So(err, ShouldBeNil)
				So(msgs, ShouldHaveLength, 2)
				So(msgs[0].Name, ShouldEqual, "Grace")
				So(msgs[1].Body, ShouldEqual, "Hello")
				So(msgs[1].ReceivedAt.Unix(), ShouldEqual, now.Add(-time.Minute).Unix())
			})

			Convey("Then stats count them", func() {
				stats, err := s.Stats(ctx)
				So(err, ShouldBeNil)
				So(stats.TotalMessages, ShouldEqual, 2)
			})
		})
	})
}
