package main

import (
	"strings"
	"testing"
)

func TestWriteDemo(t *testing.T) {
	var out strings.Builder
	writeDemo(&out)

	want := "Pedido 1: Café Expresso - $2.50\n" +
		"Pedido 2: Café Descafeinado, con Leche - $3.75\n" +
		"Pedido 3: Café Expresso, con Leche, con Crema - $4.25\n"
	if got := out.String(); got != want {
		t.Errorf("demo output:\n%s\nwant:\n%s", got, want)
	}
}
