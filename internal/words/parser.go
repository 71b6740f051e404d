package words

import (
	"fmt"
	"strconv"
	"strings"
)

// 识别词语法的分隔符。带空格，避免误切标题中本来就含有的符号。
const (
	blockPrefix = "BLOCK:"
	sepReplace  = " => "
	sepComplex  = " && "
	sepLocator  = " <> "
	sepOffset   = " >> "
)

// Parse 把整份识别词配置文本解析成有序的规则列表。
// 单行语法错误只生成一条警告并跳过该行，不会中断后面行的解析。
func Parse(content string) ([]Rule, []string) {
	var rules []Rule
	var warnings []string

	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rule, err := parseLine(line)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("第 %d 行: %v", i+1, err))
			continue
		}
		rules = append(rules, rule)
	}
	return rules, warnings
}

func parseLine(line string) (Rule, error) {
	if strings.HasPrefix(line, blockPrefix) {
		word := strings.TrimSpace(strings.TrimPrefix(line, blockPrefix))
		if word == "" {
			return nil, fmt.Errorf("屏蔽词为空: %q", line)
		}
		return BlockRule{Word: word}, nil
	}

	// 操作符出现（哪怕没带规定的空格）就不再按屏蔽词兜底，
	// 让具体的解析函数报告格式错误
	hasReplace := strings.Contains(line, "=>")
	hasComplex := strings.Contains(line, "&&")
	hasOffset := strings.Contains(line, "<>") || strings.Contains(line, ">>")

	switch {
	case hasReplace && hasComplex:
		return parseComplex(line)
	case hasReplace:
		return parseReplace(line)
	case hasOffset || hasComplex:
		return parseOffsetRule(line)
	default:
		// 兼容旧格式：没有任何操作符的非空行视为屏蔽词
		return BlockRule{Word: line}, nil
	}
}

// parseComplex 解析 "A => B && 前 <> 后 >> 表达式"
func parseComplex(line string) (Rule, error) {
	left, right, ok := strings.Cut(line, sepComplex)
	if !ok {
		return nil, fmt.Errorf("复合规则格式错误: %q", line)
	}

	replacePart, err := parseReplace(left)
	if err != nil {
		return nil, err
	}
	rep, ok := replacePart.(ReplaceRule)
	if !ok {
		return nil, fmt.Errorf("复合规则左侧必须是普通替换: %q", line)
	}

	offsetPart, err := parseOffsetRule(right)
	if err != nil {
		return nil, err
	}
	return ComplexRule{
		Source: rep.Source,
		Target: rep.Target,
		Offset: offsetPart.(OffsetRule),
	}, nil
}

// parseReplace 解析 "A => B"。目标带 {<...>} 或 {[...]} 包裹时
// 分别按搜索季度和后处理规则解析。
func parseReplace(line string) (Rule, error) {
	rawSource, rawTarget, ok := strings.Cut(line, sepReplace)
	if !ok {
		return nil, fmt.Errorf("替换规则格式错误: %q", line)
	}
	source := strings.TrimSpace(rawSource)
	target := strings.TrimSpace(rawTarget)
	if source == "" {
		return nil, fmt.Errorf("替换规则缺少被替换词: %q", line)
	}

	if body, ok := cutWrapped(target, "{<", ">}"); ok {
		fields := parseFields(body)
		raw, ok := fields["search_season"]
		if !ok {
			return nil, fmt.Errorf("缺少 search_season 字段: %q", line)
		}
		season, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("search_season 不是整数: %q", line)
		}
		return SearchSeasonRule{Source: source, Season: season}, nil
	}

	if body, ok := cutWrapped(target, "{[", "]}"); ok {
		return parsePostprocess(source, body, line)
	}

	return ReplaceRule{Source: source, Target: target}, nil
}

// parsePostprocess 解析 {[...]} 包裹的后处理规则体。
// 带 season_offset 的是季度偏移规则，否则是元数据替换规则。
func parsePostprocess(source, body, line string) (Rule, error) {
	fields := parseFields(body)

	restriction := SourceAll
	if s, ok := fields["source"]; ok && s != "" {
		restriction = s
	}

	if expr, ok := fields["season_offset"]; ok {
		if expr == "" {
			return nil, fmt.Errorf("season_offset 为空: %q", line)
		}
		return SeasonOffsetRule{
			Source:     source,
			SourceName: restriction,
			Title:      fields["title"],
			OffsetExpr: expr,
		}, nil
	}

	var meta Metadata
	if raw, ok := fields["tmdbid"]; ok {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("tmdbid 不是整数: %q", line)
		}
		meta.TMDBID = id
	}
	if raw, ok := fields["doubanid"]; ok {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("doubanid 不是整数: %q", line)
		}
		meta.DoubanID = id
	}
	meta.Type = fields["type"]
	meta.Title = fields["title"]
	// season/episode 支持简写 s/e
	meta.Season = firstOf(fields, "season", "s")
	meta.Episode = firstOf(fields, "episode", "e")

	if meta == (Metadata{}) {
		return nil, fmt.Errorf("没有可识别的元数据字段: %q", line)
	}
	return MetadataReplaceRule{Source: source, SourceName: restriction, Fields: meta}, nil
}

// parseOffsetRule 解析 "前定位词 <> 后定位词 >> 偏移表达式"
func parseOffsetRule(s string) (Rule, error) {
	locatorPart, exprPart, ok := strings.Cut(s, sepOffset)
	if !ok {
		return nil, fmt.Errorf("集数偏移缺少 %q: %q", strings.TrimSpace(sepOffset), s)
	}
	before, after, ok := strings.Cut(locatorPart, sepLocator)
	if !ok {
		return nil, fmt.Errorf("集数偏移缺少 %q: %q", strings.TrimSpace(sepLocator), s)
	}

	rule := OffsetRule{
		BeforeLocator: strings.TrimSpace(before),
		AfterLocator:  strings.TrimSpace(after),
		OffsetExpr:    strings.TrimSpace(exprPart),
	}
	if rule.OffsetExpr == "" {
		return nil, fmt.Errorf("偏移表达式为空: %q", s)
	}
	return rule, nil
}

// cutWrapped 剥掉 prefix/suffix 包裹，返回中间部分
func cutWrapped(s, prefix, suffix string) (string, bool) {
	if len(s) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(s, prefix) && strings.HasSuffix(s, suffix) {
		return s[len(prefix) : len(s)-len(suffix)], true
	}
	return "", false
}

// parseFields 解析 ";" 分隔的 key=value 序列，key 不区分大小写
func parseFields(body string) map[string]string {
	fields := make(map[string]string)
	for _, pair := range strings.Split(body, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		fields[key] = strings.TrimSpace(kv[1])
	}
	return fields
}

func firstOf(fields map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := fields[k]; ok && v != "" {
			return v
		}
	}
	return ""
}
