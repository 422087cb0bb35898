// Package bots contains the stock robot policies. Each policy registers
// itself with the bot registry on import.
package bots
