package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sennkr/danmakuTool/internal/words"
)

// 一次性调试工具：解析一份识别词文件，把样例文本跑一遍标题识别。
// 用法: debug_words -f words.txt -text "命运石之门特典 前05后" -season 1
func main() {
	file := flag.String("f", "", "识别词配置文件路径")
	text := flag.String("text", "", "样例文本")
	episode := flag.Int("episode", 0, "样例集数 (0 表示未知)")
	season := flag.Int("season", 0, "样例季度 (0 表示未知)")
	source := flag.String("source", "", "弹幕源名称")
	flag.Parse()

	if *file == "" || *text == "" {
		flag.Usage()
		os.Exit(2)
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal(err)
	}

	m, warnings := words.Compile(string(content))
	fmt.Printf("Parsed %d rules, %d warnings\n", len(m.Rules()), len(warnings))
	for _, w := range warnings {
		fmt.Printf("  WARN: %s\n", w)
	}

	var ep, se *int
	if *episode > 0 {
		ep = episode
	}
	if *season > 0 {
		se = season
	}

	outText, outEp, outSeason, changed, meta := m.RecognizeTitle(*text, ep, se, *source)
	fmt.Printf("\nInput:   %s\n", *text)
	fmt.Printf("Output:  %s\n", outText)
	fmt.Printf("Episode: %s\n", fmtPtr(outEp))
	fmt.Printf("Season:  %s\n", fmtPtr(outSeason))
	fmt.Printf("Changed: %v\n", changed)
	if meta != nil {
		fmt.Printf("Meta:    %+v\n", *meta)
	}
}

func fmtPtr(p *int) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *p)
}
