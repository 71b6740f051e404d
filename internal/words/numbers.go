package words

import "strconv"

// 单字中文数字。十以上的组合写法（如 十二）这里不展开，
// 集数定位场景里几乎只出现单字。
var cjkDigits = map[rune]int{
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5,
	'六': 6, '七': 7, '八': 8, '九': 9, '十': 10, '零': 0,
}

// ExtractNumbers 提取文本中的数字：先从左到右收集所有阿拉伯数字串，
// 再追加逐字识别出的中文数字。调用方（集数偏移）只用第一个结果。
func ExtractNumbers(text string) []int {
	var nums []int

	for i := 0; i < len(text); {
		if text[i] < '0' || text[i] > '9' {
			i++
			continue
		}
		j := i
		for j < len(text) && text[j] >= '0' && text[j] <= '9' {
			j++
		}
		if n, err := strconv.Atoi(text[i:j]); err == nil {
			nums = append(nums, n)
		}
		i = j
	}

	for _, r := range text {
		if n, ok := cjkDigits[r]; ok {
			nums = append(nums, n)
		}
	}
	return nums
}
