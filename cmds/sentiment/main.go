package main

import (
	"log"

	"github.com/kiteco/sentiment/cmdline"
)

func main() {
	log.SetPrefix("[sentiment] ")
	log.SetFlags(log.LstdFlags)
	cmdline.MustDispatch(trainCmd, evaluateCmd, explainCmd)
}
