package main

import (
	"fmt"

	"github.com/lox/handparser/handhistory"
)

// RoomsCmd lists the rooms this build can decode.
type RoomsCmd struct{}

func (cmd RoomsCmd) Run() error {
	for _, room := range handhistory.Rooms() {
		fmt.Println(room)
	}
	return nil
}
