package words

import (
	"testing"
)

func TestParseReplace(t *testing.T) {
	rules, warnings := Parse("魔法使与黑猫 => 魔法使与黑猫维兹")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	rep, ok := rules[0].(ReplaceRule)
	if !ok {
		t.Fatalf("expected ReplaceRule, got %T", rules[0])
	}
	if rep.Source != "魔法使与黑猫" || rep.Target != "魔法使与黑猫维兹" {
		t.Errorf("bad fields: %+v", rep)
	}
	if rep.Stage() != StagePreprocess {
		t.Errorf("expected preprocess stage")
	}
}

func TestParseBlockAndComments(t *testing.T) {
	content := "# 注释行\n\nBLOCK:特典\n剧场版预告\n"
	rules, warnings := Parse(content)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if b := rules[0].(BlockRule); b.Word != "特典" {
		t.Errorf("expected 特典, got %q", b.Word)
	}
	// 兼容旧格式：无操作符的行按屏蔽词处理
	if b := rules[1].(BlockRule); b.Word != "剧场版预告" {
		t.Errorf("expected 剧场版预告, got %q", b.Word)
	}
}

func TestParseEmptyBlockWord(t *testing.T) {
	rules, warnings := Parse("BLOCK:")
	if len(rules) != 0 {
		t.Fatalf("expected no rules, got %d", len(rules))
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
}

func TestParseSearchSeason(t *testing.T) {
	rules, warnings := Parse("名侦探柯南 第五季 => {<search_season=5>}")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	ss := rules[0].(SearchSeasonRule)
	if ss.Source != "名侦探柯南 第五季" || ss.Season != 5 {
		t.Errorf("bad fields: %+v", ss)
	}
}

func TestParseSeasonOffsetRule(t *testing.T) {
	cases := []struct {
		Line       string
		Source     string
		SourceName string
		Title      string
		Expr       string
	}{
		{
			Line:       "无职转生 => {[season_offset=9>13]}",
			Source:     "无职转生",
			SourceName: SourceAll,
			Expr:       "9>13",
		},
		{
			Line:       "奔跑吧 第二季 => {[season_offset=*+1;title=奔跑吧;source=dandan]}",
			Source:     "奔跑吧 第二季",
			SourceName: "dandan",
			Title:      "奔跑吧",
			Expr:       "*+1",
		},
	}

	for _, c := range cases {
		rules, warnings := Parse(c.Line)
		if len(warnings) != 0 {
			t.Fatalf("%s: unexpected warnings: %v", c.Line, warnings)
		}
		so, ok := rules[0].(SeasonOffsetRule)
		if !ok {
			t.Fatalf("%s: expected SeasonOffsetRule, got %T", c.Line, rules[0])
		}
		if so.Source != c.Source || so.SourceName != c.SourceName ||
			so.Title != c.Title || so.OffsetExpr != c.Expr {
			t.Errorf("%s: bad fields: %+v", c.Line, so)
		}
		if so.Stage() != StagePostprocess {
			t.Errorf("%s: expected postprocess stage", c.Line)
		}
	}
}

func TestParseMetadataReplace(t *testing.T) {
	rules, warnings := Parse("电锯人 => {[tmdbid=114410;type=tv;s=1;e=5;source=bilibili]}")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	mr := rules[0].(MetadataReplaceRule)
	if mr.Source != "电锯人" || mr.SourceName != "bilibili" {
		t.Errorf("bad fields: %+v", mr)
	}
	want := Metadata{TMDBID: 114410, Type: "tv", Season: "1", Episode: "5"}
	if mr.Fields != want {
		t.Errorf("bad metadata: %+v", mr.Fields)
	}

	// 缺 source 时默认对所有弹幕源生效
	rules, _ = Parse("电锯人 => {[doubanid=35770613;title=链锯人]}")
	mr = rules[0].(MetadataReplaceRule)
	if mr.SourceName != SourceAll {
		t.Errorf("expected default source %q, got %q", SourceAll, mr.SourceName)
	}
	if mr.Fields.DoubanID != 35770613 || mr.Fields.Title != "链锯人" {
		t.Errorf("bad metadata: %+v", mr.Fields)
	}
}

func TestParseOffsetLine(t *testing.T) {
	rules, warnings := Parse("第 <> 话 >> EP+12")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	off := rules[0].(OffsetRule)
	if off.BeforeLocator != "第" || off.AfterLocator != "话" || off.OffsetExpr != "EP+12" {
		t.Errorf("bad fields: %+v", off)
	}
}

func TestParseComplexLine(t *testing.T) {
	rules, warnings := Parse("命运石之门 => 命运石之门0 && 前 <> 后 >> EP+2")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	cx, ok := rules[0].(ComplexRule)
	if !ok {
		t.Fatalf("expected ComplexRule, got %T", rules[0])
	}
	if cx.Source != "命运石之门" || cx.Target != "命运石之门0" {
		t.Errorf("bad replace fields: %+v", cx)
	}
	if cx.Offset.BeforeLocator != "前" || cx.Offset.AfterLocator != "后" || cx.Offset.OffsetExpr != "EP+2" {
		t.Errorf("bad offset fields: %+v", cx.Offset)
	}
}

func TestParseMalformedLines(t *testing.T) {
	// 坏行只产生警告，不影响后续行
	content := " => onlytarget\n前 <> 后\nA => {[tmdbid=abc]}\n正常词 => 替换词\n"
	rules, warnings := Parse(content)
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(warnings), warnings)
	}
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	rep := rules[0].(ReplaceRule)
	if rep.Source != "正常词" || rep.Target != "替换词" {
		t.Errorf("bad fields: %+v", rep)
	}
}

func TestParseOrderPreserved(t *testing.T) {
	content := "BLOCK:a\nb => c\n前 <> 后 >> 1\n"
	rules, _ := Parse(content)
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	if _, ok := rules[0].(BlockRule); !ok {
		t.Errorf("rule 0: expected BlockRule, got %T", rules[0])
	}
	if _, ok := rules[1].(ReplaceRule); !ok {
		t.Errorf("rule 1: expected ReplaceRule, got %T", rules[1])
	}
	if _, ok := rules[2].(OffsetRule); !ok {
		t.Errorf("rule 2: expected OffsetRule, got %T", rules[2])
	}
}
