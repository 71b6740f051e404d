package words

// Stage 表示规则的作用阶段
type Stage int

const (
	// StagePreprocess 预处理：在向弹幕源发起搜索之前改写关键字
	StagePreprocess Stage = iota
	// StagePostprocess 后处理：在选定最佳匹配之后修正标题/季度
	StagePostprocess
)

// SourceAll 表示规则不限定弹幕源
const SourceAll = "all"

// Rule 一条识别词规则。规则解析后不可变，按配置文本中的出现顺序执行。
type Rule interface {
	Stage() Stage
}

// BlockRule 屏蔽词：出现在搜索关键字中时整体删除
type BlockRule struct {
	Word string
}

// ReplaceRule 替换词：A => B
type ReplaceRule struct {
	Source string
	Target string
}

// OffsetRule 集数偏移：前定位词 <> 后定位词 >> 偏移表达式
type OffsetRule struct {
	BeforeLocator string
	AfterLocator  string
	OffsetExpr    string
}

// ComplexRule 复合规则：替换词 && 集数偏移，偏移作用于替换后的文本
type ComplexRule struct {
	Source string
	Target string
	Offset OffsetRule
}

// SearchSeasonRule A => {<search_season=N>}，命中时直接指定搜索季度
type SearchSeasonRule struct {
	Source string
	Season int
}

// Metadata 元数据替换规则给出的字段
type Metadata struct {
	TMDBID   int    `json:"tmdbid,omitempty"`
	DoubanID int    `json:"doubanid,omitempty"`
	Type     string `json:"type,omitempty"`
	Season   string `json:"season,omitempty"`
	Episode  string `json:"episode,omitempty"`
	Title    string `json:"title,omitempty"`
}

// MetadataReplaceRule A => {[tmdbid=...;type=...;s=...;e=...]}
type MetadataReplaceRule struct {
	Source     string
	SourceName string // 限定生效的弹幕源，SourceAll 表示不限
	Fields     Metadata
}

// SeasonOffsetRule A => {[season_offset=...]}，可选 title 整体替换标题
type SeasonOffsetRule struct {
	Source     string
	SourceName string
	Title      string
	OffsetExpr string
}

func (BlockRule) Stage() Stage           { return StagePreprocess }
func (ReplaceRule) Stage() Stage         { return StagePreprocess }
func (OffsetRule) Stage() Stage          { return StagePreprocess }
func (ComplexRule) Stage() Stage         { return StagePreprocess }
func (SearchSeasonRule) Stage() Stage    { return StagePreprocess }
func (MetadataReplaceRule) Stage() Stage { return StagePostprocess }
func (SeasonOffsetRule) Stage() Stage    { return StagePostprocess }

// AppliesTo 判断规则对给定弹幕源是否生效
func (r MetadataReplaceRule) AppliesTo(sourceName string) bool {
	return appliesToSource(r.SourceName, sourceName)
}

// AppliesTo 判断规则对给定弹幕源是否生效
func (r SeasonOffsetRule) AppliesTo(sourceName string) bool {
	return appliesToSource(r.SourceName, sourceName)
}

func appliesToSource(restriction, sourceName string) bool {
	return restriction == "" || restriction == SourceAll || restriction == sourceName
}
