package preprocess_util

import (
	"strconv"
	"strings"

	"parkminer/mine_config"
)

// DiscretizeFine 罚款金额离散成档位
func DiscretizeFine(amount float64) string {
	if amount < 50 {
		return mine_config.LowFine
	}
	if amount <= 100 {
		return mine_config.MediumFine
	}
	return mine_config.HighFine
}

// DiscretizeTime 违章时间离散成时段。支持"0730A"/"0730P"和"HH:MM"两种写法,
// 解析失败退化成Unknown Time,不中断摄入
func DiscretizeTime(timeStr string) string {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return mine_config.UnknownTime
	}

	hour := -1
	if len(timeStr) >= 5 && (timeStr[len(timeStr)-1] == 'A' || timeStr[len(timeStr)-1] == 'P') {
		h, err := strconv.Atoi(timeStr[:2])
		if err != nil || h < 0 || h > 23 {
			return mine_config.UnknownTime
		}
		// 12小时制转24小时制
		if timeStr[len(timeStr)-1] == 'P' && h < 12 {
			h += 12
		}
		if timeStr[len(timeStr)-1] == 'A' && h == 12 {
			h = 0
		}
		hour = h
	} else if strings.Contains(timeStr, ":") {
		parts := strings.SplitN(timeStr, ":", 2)
		h, err := strconv.Atoi(parts[0])
		if err != nil || h < 0 || h > 23 {
			return mine_config.UnknownTime
		}
		hour = h
	} else {
		return mine_config.UnknownTime
	}

	switch {
	case hour >= 6 && hour < 12:
		return mine_config.Morning
	case hour >= 12 && hour < 18:
		return mine_config.Afternoon
	case hour >= 18 && hour < 24:
		return mine_config.Evening
	default:
		return mine_config.Night
	}
}

var vehicleMap = map[string]string{
	"SDN":  mine_config.SedanVehicle,
	"2DSD": mine_config.SedanVehicle,
	"4DSD": mine_config.SedanVehicle,
	"SUBN": mine_config.SuvVehicle,
	"PICK": mine_config.PickupVehicle,
	"VAN":  mine_config.VanVehicle,
}

// StandardizeVehicleType 车辆类型归一化
func StandardizeVehicleType(vehicleType string) string {
	if vehicleType == "" {
		return mine_config.UnknownVehicle
	}
	if v, ok := vehicleMap[strings.ToUpper(vehicleType)]; ok {
		return v
	}
	return mine_config.OtherVehicle
}

var countyMap = map[string]string{
	"NY":            "Manhattan",
	"K":             "Brooklyn",
	"Q":             "Queens",
	"BX":            "Bronx",
	"R":             "Staten Island",
	"BRONX":         "Bronx",
	"BROOKLYN":      "Brooklyn",
	"QUEENS":        "Queens",
	"MANHATTAN":     "Manhattan",
	"STATEN ISLAND": "Staten Island",
}

// MapCountyToBorough 行政县映射成行政区,映射不上返回空串,由上游决定丢行
func MapCountyToBorough(county string) string {
	return countyMap[strings.ToUpper(county)]
}
