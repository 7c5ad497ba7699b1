package basketball_nba

import "github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"

// Locale keys
const (
	LocaleEnglish            = "en"
	LocaleTraditionalChinese = "zh-TW"
)

// LocaleText holds the fixed strings a report needs
type LocaleText struct {
	MultiTeamAbbr   string // team_abbr for a traded player
	MultiTeamPrefix string // prefix of team_full for a traded player
	NoSeasonTeam    string // team_full when the season has no rows
	NoSeasonSuffix  string // appended to the season label when it has no data
	NoAwards        string
	PlayerNotFound  string // format, %s = queried name
	ProviderFailure string // format, %s = queried name, %v = error
	InvalidSeason   string // format, %s = season label

	// Rendered report labels
	LabelPosition    string
	LabelTeam        string
	LabelSeason      string
	LabelGames       string // format, %d = games played
	LabelGamesPlayed string
	LabelPerGame     string
	LabelAnalysis    string
	LabelTrend       string
	LabelStyle       string
	LabelAwards      string
	LabelCareer      string
	LabelPointsChart string
}

// Locale is a set of display-name tables. Codes absent from a table render as-is.
type Locale struct {
	Key              string
	Name             string
	PrecisePositions map[string]string
	CoarsePositions  map[string]string
	Teams            map[string]string
	Trends           map[models.TrendStatus]string
	Styles           map[models.StyleLabel]string
	Ratings          map[models.StyleLabel]string
	Text             LocaleText
}

// Translate renders code through table, falling back to the code itself
func (l *Locale) Translate(table map[string]string, code string) string {
	if name, ok := table[code]; ok {
		return name
	}
	return code
}

// TeamName renders a team code
func (l *Locale) TeamName(abbr string) string {
	return l.Translate(l.Teams, abbr)
}

// TrendLabel renders a trend classification
func (l *Locale) TrendLabel(status models.TrendStatus) string {
	if name, ok := l.Trends[status]; ok {
		return name
	}
	return string(status)
}

// StyleLabel renders a style classification
func (l *Locale) StyleLabel(style models.StyleLabel) string {
	if name, ok := l.Styles[style]; ok {
		return name
	}
	return string(style)
}

// Rating returns the one-line description of a style
func (l *Locale) Rating(style models.StyleLabel) string {
	return l.Ratings[style]
}

// English keeps codes as they come from the provider
func English() *Locale {
	return &Locale{
		Key:  LocaleEnglish,
		Name: "English",
		Ratings: map[models.StyleLabel]string{
			models.StyleEliteAllAround:   "A generational player who scores, creates and rebounds.",
			models.StyleVolumeScorer:     "A top-tier scorer who can get buckets from anywhere on the floor.",
			models.StylePlaymaker:        "A pass-first hub who is also a reliable scorer.",
			models.StyleReboundingAnchor: "An interior defense and rebounding specialist.",
			models.StyleRolePlayer:       "A dependable rotation player.",
			models.StyleInsufficientData: "Try a season with recorded games.",
		},
		Text: LocaleText{
			MultiTeamAbbr:   "Multiple teams",
			MultiTeamPrefix: "Played for multiple teams: ",
			NoSeasonTeam:    "No data for this season",
			NoSeasonSuffix:  " (no data)",
			NoAwards:        "No awards",
			PlayerNotFound:  "Player not found: %s. Check that the name is spelled correctly.",
			ProviderFailure: "Failed to load data for %s: %v",
			InvalidSeason:   "Invalid season %q, expected the YYYY-YY form (e.g. 2023-24).",

			LabelPosition:    "Position",
			LabelTeam:        "Team",
			LabelSeason:      "Season",
			LabelGames:       "%d games",
			LabelGamesPlayed: "Games played",
			LabelPerGame:     "Per game",
			LabelAnalysis:    "Analysis",
			LabelTrend:       "Trend",
			LabelStyle:       "Style",
			LabelAwards:      "Awards",
			LabelCareer:      "Career",
			LabelPointsChart: "Points per game by season",
		},
	}
}

// TraditionalChinese renders positions, teams and labels in zh-TW
func TraditionalChinese() *Locale {
	return &Locale{
		Key:  LocaleTraditionalChinese,
		Name: "繁體中文",
		PrecisePositions: map[string]string{
			"PG": "控球後衛", "SG": "得分後衛", "SF": "小前鋒",
			"PF": "大前鋒", "C": "中鋒",
		},
		CoarsePositions: map[string]string{
			"Guard": "後衛", "Forward": "前鋒", "Center": "中鋒",
			"Guard-Forward": "後衛-前鋒", "Forward-Guard": "前鋒-後衛",
			"Forward-Center": "前鋒-中鋒", "Center-Forward": "中鋒-前鋒",
			"G": "後衛", "F": "前鋒", "C": "中鋒",
			"G-F": "後衛-前鋒", "F-G": "前鋒-後衛",
			"F-C": "前鋒-中鋒", "C-F": "中鋒-前鋒",
		},
		Teams: map[string]string{
			"ATL": "亞特蘭大 老鷹", "BOS": "波士頓 賽爾提克", "BKN": "布魯克林 籃網", "CHA": "夏洛特 黃蜂",
			"CHI": "芝加哥 公牛", "CLE": "克里夫蘭 騎士", "DAL": "達拉斯 獨行俠", "DEN": "丹佛 金塊",
			"DET": "底特律 活塞", "GSW": "金州 勇士", "HOU": "休士頓 火箭", "IND": "印第安納 溜馬",
			"LAC": "洛杉磯 快艇", "LAL": "洛杉磯 湖人", "MEM": "曼菲斯 灰熊", "MIA": "邁阿密 熱火",
			"MIL": "密爾瓦基 公鹿", "MIN": "明尼蘇達 灰狼", "NOP": "紐奧良 鵜鶘", "NYK": "紐約 尼克",
			"OKC": "奧克拉荷馬雷霆", "ORL": "奧蘭多 魔術", "PHI": "費城 76人", "PHX": "鳳凰城 太陽",
			"POR": "波特蘭 拓荒者", "SAC": "沙加緬度 國王", "SAS": "聖安東尼奧 馬刺", "TOR": "多倫多 暴龍",
			"UTA": "猶他 爵士", "WAS": "華盛頓 巫師",
			"TOT": "多隊",

			"NJN": "紐澤西 籃網", "SEA": "西雅圖 超音速", "NOH": "紐奧良 黃蜂", "NOK": "紐奧良/奧克拉荷馬市 黃蜂",
			"CHH": "夏洛特 黃蜂 (舊)", "VAN": "溫哥華 灰熊", "WSB": "華盛頓 子彈", "SDC": "聖地牙哥 快艇",
			"KCK": "堪薩斯城 國王", "GOS": "金州 勇士 (舊)",
		},
		Trends: map[models.TrendStatus]string{
			models.TrendAscending:         "上升期",
			models.TrendInefficientVolume: "數據虛胖",
			models.TrendEfficiencySpike:   "效率提升",
			models.TrendDecline:           "下滑期",
			models.TrendFluctuating:       "表現波動",
		},
		Styles: map[models.StyleLabel]string{
			models.StyleEliteAllAround:   "頂級全能巨星",
			models.StyleVolumeScorer:     "得分機器",
			models.StylePlaymaker:        "組織大師",
			models.StyleReboundingAnchor: "籃板/防守支柱",
			models.StyleRolePlayer:       "角色球員",
			models.StyleInsufficientData: "數據不足",
		},
		Ratings: map[models.StyleLabel]string{
			models.StyleEliteAllAround:   "集得分、組織和籃板於一身的劃時代球員。",
			models.StyleVolumeScorer:     "聯盟頂級的得分手，能夠在任何位置取分。",
			models.StylePlaymaker:        "以傳球優先的組織核心，同時具備可靠的得分能力。",
			models.StyleReboundingAnchor: "內線防守和籃板的專家，隊伍的堅實後盾。",
			models.StyleRolePlayer:       "一名可靠的輪換球員。",
			models.StyleInsufficientData: "請嘗試查詢有數據的賽季。",
		},
		Text: LocaleText{
			MultiTeamAbbr:   "多隊",
			MultiTeamPrefix: "效力多隊: ",
			NoSeasonTeam:    "無該賽季數據",
			NoSeasonSuffix:  " (無數據)",
			NoAwards:        "無",
			PlayerNotFound:  "找不到球員：%s。請檢查姓名是否正確。",
			ProviderFailure: "讀取 %s 的數據時發生錯誤：%v",
			InvalidSeason:   "賽季格式錯誤：%q，應為 YYYY-YY（例如 2023-24）。",

			LabelPosition:    "位置",
			LabelTeam:        "球隊",
			LabelSeason:      "賽季",
			LabelGames:       "%d 場",
			LabelGamesPlayed: "出賽場次",
			LabelPerGame:     "場均數據",
			LabelAnalysis:    "分析",
			LabelTrend:       "趨勢",
			LabelStyle:       "風格",
			LabelAwards:      "獎項",
			LabelCareer:      "生涯",
			LabelPointsChart: "各賽季場均得分",
		},
	}
}
