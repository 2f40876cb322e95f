package commands

import (
	"fmt"
	"os"

	"pixvault/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("pixvault error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println("usage: pixvault [command]")                //nolint
	fmt.Println("  run <config.yml>  start gallery server") //nolint
	fmt.Println("  version           print version")        //nolint
	fmt.Println("  help              print this help")      //nolint
}
