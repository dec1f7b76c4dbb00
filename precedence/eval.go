package precedence

import (
	"errors"
	"strconv"

	"phpfront"
)

var ErrDivisionByZero = errors.New("division by zero")

// Evaluate computes an integer op tree. It accepts trees from
// ParseArithmetic as well as expression trees from the statement parser,
// so the two groupings of the same text can be compared.
func Evaluate(n *phpfront.Node) (int, error) {
	if n.IsLeaf() {
		if n.Token.Type != phpfront.NUMBER {
			return 0, errors.New("cannot evaluate " + n.Token.String())
		}
		return strconv.Atoi(n.Token.Value)
	}

	switch n.Kind {
	case phpfront.NODE_EXP:
		if len(n.Children) != 1 {
			return 0, errors.New("expression has " + strconv.Itoa(len(n.Children)) + " values")
		}
		return Evaluate(n.Children[0])
	case phpfront.NODE_OP:
		switch len(n.Children) {
		case 2:
			v, err := Evaluate(n.Children[1])
			if err != nil {
				return 0, err
			}
			return unary(n.Children[0], v)
		case 3:
			l, err := Evaluate(n.Children[0])
			if err != nil {
				return 0, err
			}
			r, err := Evaluate(n.Children[2])
			if err != nil {
				return 0, err
			}
			return binary(n.Children[1], l, r)
		}
	}
	return 0, errors.New("cannot evaluate " + n.Kind + " node")
}

func operator(n *phpfront.Node) (string, error) {
	if !n.IsLeaf() || n.Token.Type != phpfront.OPERATOR {
		return "", errors.New("expected operator, found " + n.Kind + " node")
	}
	return n.Token.Value, nil
}

func unary(op *phpfront.Node, v int) (int, error) {
	s, err := operator(op)
	if err != nil {
		return 0, err
	}
	switch s {
	case "-":
		return -v, nil
	case "+":
		return v, nil
	}
	return 0, errors.New("unknown unary operator '" + s + "'")
}

func binary(op *phpfront.Node, l int, r int) (int, error) {
	s, err := operator(op)
	if err != nil {
		return 0, err
	}
	switch s {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/", "%":
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		if s == "/" {
			return l / r, nil
		}
		return l % r, nil
	case "^":
		if r < 0 {
			return 0, errors.New("negative exponent")
		}
		result := 1
		for i := 0; i < r; i++ {
			result *= l
		}
		return result, nil
	}
	return 0, errors.New("unknown operator '" + s + "'")
}
