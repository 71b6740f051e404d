package words

import (
	"log"
	"strconv"
	"strings"
)

// EvalSeasonOffset 按紧凑的季度偏移表达式换算季度号。支持四种写法：
//
//	N>M   第 N 季改为第 M 季
//	*>M   任何季度都改为第 M 季
//	*+K   任何季度加 K（*-K 减 K）
//	N+K   第 N 季加 K（N-K 减 K），其他季度不变
//
// currentSeason 为空时直接返回空；表达式无效时原样返回并记一条日志。
func EvalSeasonOffset(currentSeason *int, offsetExpr string) *int {
	if currentSeason == nil {
		return nil
	}
	expr := strings.TrimSpace(offsetExpr)

	if i := strings.Index(expr, ">"); i >= 0 {
		return evalSeasonRemap(currentSeason, expr[:i], expr[i+1:], offsetExpr)
	}

	if rest, ok := strings.CutPrefix(expr, "*"); ok {
		k, ok := parseSignedOffset(rest)
		if !ok {
			log.Printf("识别词: 季度偏移表达式 %q 无效", offsetExpr)
			return currentSeason
		}
		return clampSeason(*currentSeason + k)
	}

	// N+K / N-K
	i := strings.IndexAny(expr, "+-")
	if i <= 0 {
		log.Printf("识别词: 季度偏移表达式 %q 无效", offsetExpr)
		return currentSeason
	}
	n, err := strconv.Atoi(strings.TrimSpace(expr[:i]))
	if err != nil {
		log.Printf("识别词: 季度偏移表达式 %q 无效", offsetExpr)
		return currentSeason
	}
	k, ok := parseSignedOffset(expr[i:])
	if !ok {
		log.Printf("识别词: 季度偏移表达式 %q 无效", offsetExpr)
		return currentSeason
	}
	if n != *currentSeason {
		return currentSeason
	}
	return clampSeason(*currentSeason + k)
}

// evalSeasonRemap 处理 "N>M" 与 "*>M"
func evalSeasonRemap(currentSeason *int, lhs, rhs, offsetExpr string) *int {
	target, err := strconv.Atoi(strings.TrimSpace(rhs))
	if err != nil {
		log.Printf("识别词: 季度偏移表达式 %q 无效", offsetExpr)
		return currentSeason
	}

	lhs = strings.TrimSpace(lhs)
	if lhs == "*" {
		return clampSeason(target)
	}
	n, err := strconv.Atoi(lhs)
	if err != nil {
		log.Printf("识别词: 季度偏移表达式 %q 无效", offsetExpr)
		return currentSeason
	}
	if n == *currentSeason {
		return clampSeason(target)
	}
	return currentSeason
}

// parseSignedOffset 解析带显式符号的偏移量 "+K"/"-K"
func parseSignedOffset(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return k, true
}

func clampSeason(v int) *int {
	if v < 1 {
		v = 1
	}
	return &v
}
