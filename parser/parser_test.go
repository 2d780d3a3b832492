package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mylang/mylang/lang"
)

func runSource(t *testing.T, src string) string {
	t.Helper()
	program, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	var out bytes.Buffer
	ctx := lang.NewContext(&out, lang.DefaultLimits())
	if err := lang.Run(program, ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestArithmeticPrecedence(t *testing.T) {
	got := runSource(t, "print(2 + 3 * 4)\n")
	if got != "14\n" {
		t.Fatalf("got %q, want %q", got, "14\n")
	}
}

func TestStringConcatenation(t *testing.T) {
	got := runSource(t, `print("foo" + "bar")` + "\n")
	if got != "foobar\n" {
		t.Fatalf("got %q, want %q", got, "foobar\n")
	}
}

func TestIfElse(t *testing.T) {
	src := "x = 5\n" +
		"if x > 3:\n" +
		"  print(\"big\")\n" +
		"else:\n" +
		"  print(\"small\")\n"
	got := runSource(t, src)
	if got != "big\n" {
		t.Fatalf("got %q, want %q", got, "big\n")
	}
}

func TestClassWithStr(t *testing.T) {
	src := "class Point:\n" +
		"  def __init__(self, x, y):\n" +
		"    self.x = x\n" +
		"    self.y = y\n" +
		"  def __str__(self):\n" +
		"    return \"Point\"\n" +
		"p = Point(1, 2)\n" +
		"print(p)\n"
	got := runSource(t, src)
	if got != "Point\n" {
		t.Fatalf("got %q, want %q", got, "Point\n")
	}
}

func TestInheritanceAndDispatch(t *testing.T) {
	src := "class Animal:\n" +
		"  def speak(self):\n" +
		"    return \"...\"\n" +
		"  def announce(self):\n" +
		"    print(self.speak())\n" +
		"class Dog(Animal):\n" +
		"  def speak(self):\n" +
		"    return \"Woof\"\n" +
		"d = Dog()\n" +
		"d.announce()\n"
	got := runSource(t, src)
	if got != "Woof\n" {
		t.Fatalf("got %q, want %q", got, "Woof\n")
	}
}

func TestEqualityDispatch(t *testing.T) {
	src := "class Box:\n" +
		"  def __init__(self, n):\n" +
		"    self.n = n\n" +
		"  def __eq__(self, other):\n" +
		"    return self.n == other.n\n" +
		"a = Box(1)\n" +
		"b = Box(1)\n" +
		"if a == b:\n" +
		"  print(\"same\")\n" +
		"else:\n" +
		"  print(\"different\")\n"
	got := runSource(t, src)
	if got != "same\n" {
		t.Fatalf("got %q, want %q", got, "same\n")
	}
}

func TestRecursiveMethodCall(t *testing.T) {
	src := "class Math:\n" +
		"  def fact(self, n):\n" +
		"    if n <= 1:\n" +
		"      return 1\n" +
		"    else:\n" +
		"      return n * self.fact(n - 1)\n" +
		"m = Math()\n" +
		"print(m.fact(5))\n"
	got := strings.TrimSpace(runSource(t, src))
	if got != "120" {
		t.Fatalf("got %q, want %q", got, "120")
	}
}

func TestUndefinedVariableReportsNameError(t *testing.T) {
	program, err := Parse("print(missing)\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var out bytes.Buffer
	ctx := lang.NewContext(&out, lang.DefaultLimits())
	err = lang.Run(program, ctx)
	var rerr *lang.RuntimeError
	if !errors.As(err, &rerr) || rerr.Kind != lang.NameError {
		t.Fatalf("got %v, expected a NameError for an undefined variable", err)
	}
}
