package artifact

// TypeID names an artifact slot.
type TypeID string

const (
	Flower  TypeID = "flower"
	Plume   TypeID = "plume"
	Sands   TypeID = "sands"
	Goblet  TypeID = "goblet"
	Circlet TypeID = "circlet"
)

// TypeInfo pairs a slot with its in-game Japanese name.
type TypeInfo struct {
	ID   TypeID
	Name string
}

// TypeList is every slot in in-game order.
var TypeList = []TypeInfo{
	{Flower, "生の花"},
	{Plume, "死の羽"},
	{Sands, "時の砂"},
	{Goblet, "空の杯"},
	{Circlet, "理の冠"},
}

// SetID names an artifact set.
type SetID string

// Sets maps set ids to their in-game Japanese names.
var Sets = map[SetID]string{
	"GladiatorsFinale":       "剣闘士のフィナーレ",
	"WanderersTroupe":        "大地を流浪する楽団",
	"NoblesseOblige":         "旧貴族のしつけ",
	"BloodstainedChivalry":   "血染めの騎士道",
	"ViridescentVenerer":     "翠緑の影",
	"ThunderingFury":         "雷のような怒り",
	"CrimsonWitchOfFlames":   "燃え盛る炎の魔女",
	"BlizzardStrayer":        "氷風を彷徨う勇士",
	"HeartOfDepth":           "沈淪の心",
	"TenacityOfTheMillelith": "千岩牢固",
	"PaleFlame":              "蒼白の炎",
	"ShimenawasReminiscence": "追憶のしめ縄",
	"EmblemOfSeveredFate":    "絶縁の旗印",
	"HuskOfOpulentDreams":    "華館夢醒形骸記",
	"OceanHuedClam":          "海染硨磲",
	"VermillionHereafter":    "辰砂往生録",
	"EchoesOfAnOffering":     "来歆の余響",
}

// TypeName returns the display name of t, or t itself when unknown.
func TypeName(t TypeID) string {
	for _, info := range TypeList {
		if info.ID == t {
			return info.Name
		}
	}
	return string(t)
}

// SetName returns the display name of s, or s itself when unknown.
func SetName(s SetID) string {
	if name, ok := Sets[s]; ok {
		return name
	}
	return string(s)
}

// ValidType reports whether t is one of TypeList.
func ValidType(t TypeID) bool {
	for _, info := range TypeList {
		if info.ID == t {
			return true
		}
	}
	return false
}

// ValidSet reports whether s is in Sets.
func ValidSet(s SetID) bool {
	_, ok := Sets[s]
	return ok
}
