package words

import (
	"fmt"
	"strconv"
)

// evalIntExpr 计算只含整数、加减号和括号的算术表达式。
// 识别词的偏移表达式只允许这个子集，不接入通用表达式引擎。
func evalIntExpr(expr string) (int, error) {
	p := &exprParser{input: expr}
	v, err := p.parseSum()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("意外的字符 %q", p.input[p.pos:])
	}
	return v, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) parseSum() (int, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return v, nil
		}
		op := p.input[p.pos]
		if op != '+' && op != '-' {
			return v, nil
		}
		p.pos++
		t, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			v += t
		} else {
			v -= t
		}
	}
}

func (p *exprParser) parseTerm() (int, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, fmt.Errorf("表达式不完整")
	}

	switch c := p.input[p.pos]; {
	case c == '(':
		p.pos++
		v, err := p.parseSum()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return 0, fmt.Errorf("括号不匹配")
		}
		p.pos++
		return v, nil

	case c == '+' || c == '-':
		p.pos++
		v, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if c == '-' {
			v = -v
		}
		return v, nil

	case c >= '0' && c <= '9':
		j := p.pos
		for j < len(p.input) && p.input[j] >= '0' && p.input[j] <= '9' {
			j++
		}
		v, err := strconv.Atoi(p.input[p.pos:j])
		if err != nil {
			return 0, fmt.Errorf("数字 %q 无效", p.input[p.pos:j])
		}
		p.pos = j
		return v, nil

	default:
		return 0, fmt.Errorf("意外的字符 %q", string(p.input[p.pos]))
	}
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}
