package words

import "testing"

func intPtr(v int) *int { return &v }

func TestEvalEpisodeOffset(t *testing.T) {
	cases := []struct {
		Name    string
		Text    string
		Current *int
		Before  string
		After   string
		Expr    string
		Want    *int
	}{
		{
			Name: "EP表达式",
			Text: "foo[12]bar", Before: "[", After: "]", Expr: "EP+1",
			Want: intPtr(13),
		},
		{
			Name: "定位词未命中保持原值",
			Text: "foo 12 bar", Current: intPtr(3), Before: "[", After: "]", Expr: "EP+1",
			Want: intPtr(3),
		},
		{
			Name: "片段中没有数字保持原值",
			Text: "foo[abc]bar", Current: nil, Before: "[", After: "]", Expr: "EP+1",
			Want: nil,
		},
		{
			Name: "纯数字偏移量",
			Text: "前05后", Before: "前", After: "后", Expr: "2",
			Want: intPtr(7),
		},
		{
			Name: "负偏移量",
			Text: "前05后", Before: "前", After: "后", Expr: "-3",
			Want: intPtr(2),
		},
		{
			Name: "结果下限为1",
			Text: "前02后", Before: "前", After: "后", Expr: "EP-20",
			Want: intPtr(1),
		},
		{
			Name: "中文数字",
			Text: "第十话", Before: "第", After: "话", Expr: "EP+2",
			Want: intPtr(12),
		},
		{
			Name: "带括号的表达式",
			Text: "foo[12]bar", Before: "[", After: "]", Expr: "EP+(1-2)",
			Want: intPtr(11),
		},
		{
			Name: "非法表达式fail-open",
			Text: "foo[12]bar", Current: intPtr(9), Before: "[", After: "]", Expr: "EP*2",
			Want: intPtr(9),
		},
		{
			Name: "非法偏移量fail-open",
			Text: "foo[12]bar", Current: intPtr(9), Before: "[", After: "]", Expr: "abc",
			Want: intPtr(9),
		},
	}

	for _, c := range cases {
		got := EvalEpisodeOffset(c.Text, c.Current, c.Before, c.After, c.Expr)
		if !equalIntPtr(got, c.Want) {
			t.Errorf("%s: got %s, want %s", c.Name, fmtIntPtr(got), fmtIntPtr(c.Want))
		}
	}
}

func TestEvalIntExpr(t *testing.T) {
	cases := []struct {
		Expr    string
		Want    int
		WantErr bool
	}{
		{Expr: "12+1", Want: 13},
		{Expr: "12 - 1", Want: 11},
		{Expr: "(3+4)-2", Want: 5},
		{Expr: "-5+8", Want: 3},
		{Expr: "1+2+3", Want: 6},
		{Expr: "2*3", WantErr: true},
		{Expr: "(1+2", WantErr: true},
		{Expr: "", WantErr: true},
		{Expr: "1+", WantErr: true},
	}

	for _, c := range cases {
		got, err := evalIntExpr(c.Expr)
		if c.WantErr {
			if err == nil {
				t.Errorf("evalIntExpr(%q): expected error, got %d", c.Expr, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("evalIntExpr(%q): %v", c.Expr, err)
			continue
		}
		if got != c.Want {
			t.Errorf("evalIntExpr(%q) = %d, want %d", c.Expr, got, c.Want)
		}
	}
}
