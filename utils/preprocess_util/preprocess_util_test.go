package preprocess_util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"parkminer/mine_config"
)

func TestDiscretizeFine(t *testing.T) {
	Convey("TestDiscretizeFine", t, func() {
		So(DiscretizeFine(49.99), ShouldEqual, mine_config.LowFine)
		So(DiscretizeFine(50), ShouldEqual, mine_config.MediumFine)
		So(DiscretizeFine(100), ShouldEqual, mine_config.MediumFine)
		So(DiscretizeFine(100.01), ShouldEqual, mine_config.HighFine)
		So(DiscretizeFine(0), ShouldEqual, mine_config.LowFine)
	})
}

func TestDiscretizeTime(t *testing.T) {
	Convey("TestDiscretizeTime", t, func() {
		Convey("compact 12h forms", func() {
			So(DiscretizeTime("0730A"), ShouldEqual, mine_config.Morning)
			So(DiscretizeTime("0230P"), ShouldEqual, mine_config.Afternoon)
			So(DiscretizeTime("0730P"), ShouldEqual, mine_config.Evening)
			So(DiscretizeTime("1230A"), ShouldEqual, mine_config.Night)
		})
		Convey("colon forms", func() {
			So(DiscretizeTime("06:00"), ShouldEqual, mine_config.Morning)
			So(DiscretizeTime("11:59"), ShouldEqual, mine_config.Morning)
			So(DiscretizeTime("12:00"), ShouldEqual, mine_config.Afternoon)
			So(DiscretizeTime("18:00"), ShouldEqual, mine_config.Evening)
			So(DiscretizeTime("23:59"), ShouldEqual, mine_config.Evening)
			So(DiscretizeTime("02:10"), ShouldEqual, mine_config.Night)
		})
		Convey("unparseable degrades to sentinel, never aborts", func() {
			So(DiscretizeTime(""), ShouldEqual, mine_config.UnknownTime)
			So(DiscretizeTime("soon"), ShouldEqual, mine_config.UnknownTime)
			So(DiscretizeTime("xx:30"), ShouldEqual, mine_config.UnknownTime)
			So(DiscretizeTime("99:30"), ShouldEqual, mine_config.UnknownTime)
		})
	})
}

func TestStandardizeVehicleType(t *testing.T) {
	Convey("TestStandardizeVehicleType", t, func() {
		So(StandardizeVehicleType("SDN"), ShouldEqual, mine_config.SedanVehicle)
		So(StandardizeVehicleType("4dsd"), ShouldEqual, mine_config.SedanVehicle)
		So(StandardizeVehicleType("SUBN"), ShouldEqual, mine_config.SuvVehicle)
		So(StandardizeVehicleType("PICK"), ShouldEqual, mine_config.PickupVehicle)
		So(StandardizeVehicleType("VAN"), ShouldEqual, mine_config.VanVehicle)
		So(StandardizeVehicleType("TRLR"), ShouldEqual, mine_config.OtherVehicle)
		So(StandardizeVehicleType(""), ShouldEqual, mine_config.UnknownVehicle)
	})
}

func TestMapCountyToBorough(t *testing.T) {
	Convey("TestMapCountyToBorough", t, func() {
		So(MapCountyToBorough("NY"), ShouldEqual, "Manhattan")
		So(MapCountyToBorough("k"), ShouldEqual, "Brooklyn")
		So(MapCountyToBorough("Bx"), ShouldEqual, "Bronx")
		So(MapCountyToBorough("STATEN ISLAND"), ShouldEqual, "Staten Island")
		So(MapCountyToBorough("ZZ"), ShouldEqual, "")
	})
}
