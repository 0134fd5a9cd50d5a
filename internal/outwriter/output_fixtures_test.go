package outwriter

import (
	"github.com/huangsam/gearpath/internal/contract"
	"github.com/huangsam/gearpath/schema"
)

var testRPMs = []float64{85, 95}

func testConfig(output schema.OutputMode) *contract.Config {
	return &contract.Config{
		Output:    output,
		Precision: 2,
		RPMs:      testRPMs,
		Units:     schema.MetricUnits,
		Width:     120,
	}
}

func testDrivetrainInfo(title string) schema.DrivetrainInfo {
	return schema.DrivetrainInfo{
		Title:       title,
		Fronts:      []int{30, 46},
		Rears:       []int{11, 36},
		HubRatios:   []float64{1},
		WheelRadius: 0.34,
		CrankLength: 0.17,
		Size:        4,
		Strategy:    schema.GreedyStrategy,
		Objective:   schema.StdDevObjective,
		Threshold:   0.05,
	}
}

func testGear(front, rear int, gain, step float64, inPath bool) schema.GearResult {
	return schema.GearResult{
		Label:            schema.FormatInts([]int{front, rear}),
		Front:            front,
		Rear:             rear,
		HubRatio:         1,
		GearRatio:        float64(front) / float64(rear),
		GainRatio:        gain,
		GearInches:       gain * 13.4,
		Development:      gain * 1.07,
		Speeds:           []schema.SpeedAtCadence{{RPM: 85, Speed: gain * 5.4}, {RPM: 95, Speed: gain * 6.1}},
		StepFromPrevious: step,
		InBestPath:       inPath,
	}
}

func testGearsResult() schema.GearsResult {
	return schema.GearsResult{
		Drivetrain: testDrivetrainInfo("gravel"),
		Units:      schema.MetricUnits,
		RPMs:       testRPMs,
		Rows: []schema.ChainringRow{
			{Front: 30, HubRatio: 1, Gears: []schema.GearResult{
				testGear(30, 36, 1.67, 0, true),
				testGear(30, 11, 5.45, 2.27, false),
			}},
			{Front: 46, HubRatio: 1, Gears: []schema.GearResult{
				testGear(46, 36, 2.56, 0, false),
				testGear(46, 11, 8.36, 2.27, true),
			}},
		},
	}
}

func testPathResult() schema.PathResult {
	return schema.PathResult{
		Drivetrain: testDrivetrainInfo("gravel"),
		Units:      schema.MetricUnits,
		RPMs:       testRPMs,
		Path: []schema.GearResult{
			testGear(30, 36, 1.67, 0, true),
			testGear(46, 36, 2.56, 0.53, true),
			testGear(46, 11, 8.36, 2.27, true),
		},
		Summary: schema.PathSummary{
			Gears:         3,
			Score:         0.87,
			MeanStep:      1.4,
			MinStep:       0.53,
			MaxStep:       2.27,
			StdDevStep:    0.87,
			RangeMultiple: 5.01,
		},
	}
}
