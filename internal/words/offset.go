package words

import (
	"log"
	"regexp"
	"strconv"
	"strings"
)

// epVariable 偏移表达式中代表定位到的集数的变量名
const epVariable = "EP"

// EvalEpisodeOffset 按前后定位词截取文本片段，取其中第一个数字作为集数，
// 再套用偏移表达式重新计算。定位失败、片段中没有数字、表达式无效时
// 都原样返回 currentEpisode（fail-open），表达式错误会记一条日志。
func EvalEpisodeOffset(text string, currentEpisode *int, beforeLocator, afterLocator, offsetExpr string) *int {
	pattern := regexp.QuoteMeta(beforeLocator) + `(.*?)` + regexp.QuoteMeta(afterLocator)
	re, err := regexp.Compile(pattern)
	if err != nil {
		log.Printf("识别词: 集数定位词无效 %q <> %q: %v", beforeLocator, afterLocator, err)
		return currentEpisode
	}

	match := re.FindStringSubmatch(text)
	if match == nil {
		return currentEpisode
	}

	nums := ExtractNumbers(match[1])
	if len(nums) == 0 {
		return currentEpisode
	}
	ep := nums[0]

	expr := strings.TrimSpace(offsetExpr)
	var result int
	if strings.HasPrefix(expr, epVariable) {
		v, err := evalIntExpr(strconv.Itoa(ep) + strings.TrimPrefix(expr, epVariable))
		if err != nil {
			log.Printf("识别词: 偏移表达式 %q 无效: %v", offsetExpr, err)
			return currentEpisode
		}
		result = v
	} else {
		k, err := strconv.Atoi(expr)
		if err != nil {
			log.Printf("识别词: 偏移量 %q 不是整数", offsetExpr)
			return currentEpisode
		}
		result = ep + k
	}

	if result < 1 {
		result = 1
	}
	return &result
}
