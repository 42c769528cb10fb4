package main

import (
	"fmt"
	"io"
	"os"

	"cafe-telegram/beverage"
)

// runDemo prints the three canonical compositions. Needs no DB and no token;
// `cafe-telegram demo` is the quickest way to see the pricing core at work.
func runDemo() {
	writeDemo(os.Stdout)
}

func writeDemo(w io.Writer) {
	var pedido beverage.Beverage = beverage.NewEspresso()
	printPedido(w, 1, pedido)

	pedido = beverage.NewDecaf()
	pedido = beverage.NewMilk(pedido)
	printPedido(w, 2, pedido)

	pedido = beverage.NewEspresso()
	pedido = beverage.NewMilk(pedido)
	pedido = beverage.NewCream(pedido)
	printPedido(w, 3, pedido)
}

func printPedido(w io.Writer, n int, b beverage.Beverage) {
	fmt.Fprintf(w, "Pedido %d: %s - $%.2f\n", n, b.Description(), b.Price())
}
