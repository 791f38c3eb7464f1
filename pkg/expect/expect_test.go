package expect

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExpectedKeys(t *testing.T) {
	Convey("While deriving the expected key set", t, func() {
		Convey("For a small configuration", func() {
			cfg := Config{Threads: 2, MetricsPerThread: 3}

			Convey("Count should follow threads*metrics*5 + fixed", func() {
				So(cfg.Count(), ShouldEqual, 2*3*5+8)
			})

			Convey("Keys should contain the generated names for every pair and kind", func() {
				keys := toSet(cfg.Keys())

				So(keys, ShouldContainKey, "TestMetric0_0_uint")
				So(keys, ShouldContainKey, "TestMetric0_0_int")
				So(keys, ShouldContainKey, "TestMetric0_0_float")
				So(keys, ShouldContainKey, "TestMetric0_0_sum_int")
				So(keys, ShouldContainKey, "TestMetric0_0_rate_sum_int")
				So(keys, ShouldContainKey, "TestMetric2_1_rate_sum_int")

				Convey("But no names outside the configured ranges", func() {
					So(keys, ShouldNotContainKey, "TestMetric3_0_uint")
					So(keys, ShouldNotContainKey, "TestMetric0_2_uint")
				})
			})

			Convey("Keys should contain every fixed metric name", func() {
				keys := toSet(cfg.Keys())
				for _, fixed := range FixedKeys {
					So(keys, ShouldContainKey, fixed)
				}
			})

			Convey("Keys should have no duplicates and match Count", func() {
				So(len(cfg.Keys()), ShouldEqual, cfg.Count())
				So(len(toSet(cfg.Keys())), ShouldEqual, cfg.Count())
			})
		})

		Convey("For the default configuration of the shipped target", func() {
			cfg := DefaultConfig()

			Convey("Count should be exactly 10008", func() {
				So(cfg.Count(), ShouldEqual, 10008)
			})

			Convey("Last generated indices should be present", func() {
				keys := toSet(cfg.Keys())
				So(keys, ShouldContainKey, "TestMetric999_1_rate_sum_int")
				So(keys, ShouldContainKey, "TestMetric999_0_uint")
			})
		})

		Convey("Keys should be recomputed fresh on every call", func() {
			cfg := Config{Threads: 1, MetricsPerThread: 1}
			first := cfg.Keys()
			second := cfg.Keys()

			first[0] = "mutated"
			So(second[0], ShouldEqual, "TestMetric0_0_uint")
		})
	})
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}
