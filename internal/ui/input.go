package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// InputReader lee y valida la entrada del usuario. Los errores de formato se
// reintentan aquí; las capas de abajo reciben valores ya parseados.
type InputReader struct {
	sc  *bufio.Scanner
	out io.Writer
	eof bool
}

func NewInputReader(in io.Reader, out io.Writer) *InputReader {
	return &InputReader{sc: bufio.NewScanner(in), out: out}
}

// EOF responde si la entrada se agotó; el bucle principal la usa para salir
// en lugar de repreguntar para siempre.
func (r *InputReader) EOF() bool { return r.eof }

func (r *InputReader) ReadInt(prompt string) int {
	for {
		line := r.ReadString(prompt)
		if r.eof {
			return 0
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n
		}
		fmt.Fprintln(r.out, "Por favor ingrese un número válido.")
	}
}

func (r *InputReader) ReadFloat(prompt string) float64 {
	for {
		line := r.ReadString(prompt)
		if r.eof {
			return 0
		}
		f, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return f
		}
		fmt.Fprintln(r.out, "Por favor ingrese un número válido.")
	}
}

func (r *InputReader) ReadString(prompt string) string {
	fmt.Fprint(r.out, prompt)
	if !r.sc.Scan() {
		r.eof = true
		return ""
	}
	return strings.TrimSpace(r.sc.Text())
}

func (r *InputReader) ReadConfirmation(prompt string) bool {
	resp := r.ReadString(prompt + " (S/N): ")
	return strings.EqualFold(resp, "S")
}
