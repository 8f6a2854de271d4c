// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package weather

// WeatherCondition pairs a WMO weather code's emoji icon with its label.
type WeatherCondition struct {
	Icon        string
	Description string
}

// codeMap translates Open-Meteo WMO weather codes for display.
var codeMap = map[int]WeatherCondition{
	0:  {"☀️", "晴天"},
	1:  {"🌤️", "大致晴朗"},
	2:  {"⛅", "多雲"},
	3:  {"☁️", "陰天"},
	45: {"🌫️", "霧"},
	48: {"🌫️", "霧凇"},
	51: {"🌧️", "小毛雨"},
	53: {"🌧️", "毛雨"},
	55: {"🌧️", "濃毛雨"},
	56: {"🌧️", "凍毛雨"},
	57: {"🌧️", "濃凍毛雨"},
	61: {"🌧️", "小雨"},
	63: {"🌧️", "中雨"},
	65: {"🌧️", "大雨"},
	66: {"🌨️", "凍雨"},
	67: {"🌨️", "大凍雨"},
	71: {"🌨️", "小雪"},
	73: {"🌨️", "中雪"},
	75: {"❄️", "大雪"},
	77: {"❄️", "雪粒"},
	80: {"🌧️", "陣雨"},
	81: {"🌧️", "中陣雨"},
	82: {"🌧️", "大陣雨"},
	85: {"🌨️", "小陣雪"},
	86: {"❄️", "大陣雪"},
	95: {"⛈️", "雷雨"},
	96: {"⛈️", "雷雨夾冰雹"},
	99: {"⛈️", "大雷雨夾冰雹"},
}

// unknownCondition is shown for codes outside the table.
var unknownCondition = WeatherCondition{Icon: "🌡️", Description: "未知"}

// Condition maps a numeric weather code to its display pair, falling back to
// the unknown pair for unmapped codes.
func Condition(code int) WeatherCondition {
	if c, ok := codeMap[code]; ok {
		return c
	}
	return unknownCondition
}
