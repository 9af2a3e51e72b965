package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Lua Icon = iota + 1
	Fail
	Success
	Skip
	Cancel
	Progress
	Mark
	Link
	Search
	Source
	Question
)

var icons = map[Icon]*iconDef{
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "Lua",
		kaomoji: "(=^･ω･^=)",
		squares: "🟦",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "ﮊ",
		plain:   "X",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "+",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Skip: {
		emoji:   "⏭️",
		nerd:    "",
		plain:   "-",
		kaomoji: "(￣ー￣)",
		squares: "⬜",
	},
	Cancel: {
		emoji:   "🛑",
		nerd:    "",
		plain:   "!",
		kaomoji: "(｀Д´)",
		squares: "🟧",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Mark: {
		emoji:   "✔️",
		nerd:    "",
		plain:   "*",
		kaomoji: "(*´▽`*)",
		squares: "🟩",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "@",
		kaomoji: "(∩^o^)⊃━☆",
		squares: "🟪",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(⊙_⊙)",
		squares: "🟫",
	},
	Source: {
		emoji:   "📡",
		nerd:    "",
		plain:   "#",
		kaomoji: "(￣▽￣)ノ",
		squares: "🟦",
	},
	Question: {
		emoji:   "❓",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・・?)",
		squares: "⬛",
	},
}
