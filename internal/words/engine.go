// Package words 实现自定义识别词规则引擎：
// 把外部弹幕源五花八门的标题、季度、集数改写成媒体库想要的值。
// 规则由用户手写的多行配置文本定义，见 Parse。
package words

import (
	"log"
	"strconv"
	"strings"
)

// Matcher 持有一份解析好的识别词规则，按配置文本顺序执行。
// Matcher 是只读的，可被任意数量的 goroutine 并发使用。
type Matcher struct {
	rules []Rule
}

func NewMatcher(rules []Rule) *Matcher {
	return &Matcher{rules: rules}
}

// Compile 解析配置文本并构造 Matcher，警告原样透传给调用方。
func Compile(content string) (*Matcher, []string) {
	rules, warnings := Parse(content)
	return NewMatcher(rules), warnings
}

// Rules 返回规则列表（只读）
func (m *Matcher) Rules() []Rule {
	return m.rules
}

// PreprocessSearchKeyword 在查询弹幕源之前改写搜索关键字，
// 依次执行所有预处理阶段规则，返回改写后的 (关键字, 集数, 季度)。
// changed 仅用于日志，不参与控制流。
func (m *Matcher) PreprocessSearchKeyword(text string, episode, season *int) (string, *int, *int, bool) {
	changed := false

	for _, r := range m.rules {
		switch rule := r.(type) {
		case BlockRule:
			// 屏蔽词用普通包含判断，不做词边界检查
			if strings.Contains(text, rule.Word) {
				text = strings.TrimSpace(strings.ReplaceAll(text, rule.Word, ""))
				changed = true
			}

		case ReplaceRule:
			if ExactMatch(text, rule.Source) {
				text = strings.ReplaceAll(text, rule.Source, rule.Target)
				changed = true
			}

		case OffsetRule:
			next := EvalEpisodeOffset(text, episode, rule.BeforeLocator, rule.AfterLocator, rule.OffsetExpr)
			if !equalIntPtr(next, episode) {
				changed = true
			}
			episode = next

		case ComplexRule:
			// 复合规则的替换故意比 ReplaceRule 宽松：普通包含即可命中，
			// 偏移计算作用于替换后的文本
			if strings.Contains(text, rule.Source) {
				text = strings.ReplaceAll(text, rule.Source, rule.Target)
				episode = EvalEpisodeOffset(text, episode,
					rule.Offset.BeforeLocator, rule.Offset.AfterLocator, rule.Offset.OffsetExpr)
				changed = true
			}

		case SearchSeasonRule:
			if ExactMatch(text, rule.Source) {
				s := rule.Season
				season = &s
				changed = true
			}
		}
	}
	return text, episode, season, changed
}

// PostprocessTitle 在选定最佳匹配之后修正标题与季度，只执行后处理阶段
// 且弹幕源匹配的规则。元数据替换规则只收集字段，不改动标题文本
// （RecognizeTitle 与此不同）。后命中的规则覆盖先命中的结果。
func (m *Matcher) PostprocessTitle(text string, season *int, sourceName string) (string, *int, bool, *Metadata) {
	changed := false
	var meta *Metadata

	for _, r := range m.rules {
		switch rule := r.(type) {
		case SeasonOffsetRule:
			if !rule.AppliesTo(sourceName) || !ExactMatch(text, rule.Source) {
				continue
			}
			if rule.Title != "" {
				text = rule.Title
			}
			season = EvalSeasonOffset(season, rule.OffsetExpr)
			changed = true

		case MetadataReplaceRule:
			if !rule.AppliesTo(sourceName) || !ExactMatch(text, rule.Source) {
				continue
			}
			fields := rule.Fields
			meta = &fields
			changed = true
		}
	}
	return text, season, changed, meta
}

// RecognizeTitle 单次遍历执行全部两个阶段的规则，供一步到位的调用方使用。
// 与 PostprocessTitle 的唯一差异：命中元数据替换规则时会把被替换词
// 从文本中剔除。
func (m *Matcher) RecognizeTitle(text string, episode, season *int, sourceName string) (string, *int, *int, bool, *Metadata) {
	changed := false
	var meta *Metadata

	for _, r := range m.rules {
		switch rule := r.(type) {
		case BlockRule:
			if strings.Contains(text, rule.Word) {
				text = strings.TrimSpace(strings.ReplaceAll(text, rule.Word, ""))
				changed = true
			}

		case ReplaceRule:
			if ExactMatch(text, rule.Source) {
				text = strings.ReplaceAll(text, rule.Source, rule.Target)
				changed = true
			}

		case OffsetRule:
			next := EvalEpisodeOffset(text, episode, rule.BeforeLocator, rule.AfterLocator, rule.OffsetExpr)
			if !equalIntPtr(next, episode) {
				changed = true
			}
			episode = next

		case ComplexRule:
			if strings.Contains(text, rule.Source) {
				text = strings.ReplaceAll(text, rule.Source, rule.Target)
				episode = EvalEpisodeOffset(text, episode,
					rule.Offset.BeforeLocator, rule.Offset.AfterLocator, rule.Offset.OffsetExpr)
				changed = true
			}

		case SearchSeasonRule:
			if ExactMatch(text, rule.Source) {
				s := rule.Season
				season = &s
				changed = true
			}

		case SeasonOffsetRule:
			if !rule.AppliesTo(sourceName) || !ExactMatch(text, rule.Source) {
				continue
			}
			if rule.Title != "" {
				text = rule.Title
			}
			season = EvalSeasonOffset(season, rule.OffsetExpr)
			changed = true

		case MetadataReplaceRule:
			if !rule.AppliesTo(sourceName) || !ExactMatch(text, rule.Source) {
				continue
			}
			fields := rule.Fields
			meta = &fields
			text = strings.TrimSpace(strings.ReplaceAll(text, rule.Source, ""))
			changed = true
		}
	}

	if changed {
		log.Printf("识别词: 标题识别结果 %q (ep=%s, season=%s)", text, fmtIntPtr(episode), fmtIntPtr(season))
	}
	return text, episode, season, changed, meta
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtIntPtr(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}
