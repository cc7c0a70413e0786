package common

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/flux-image/flux-image/common/config"
	"github.com/flux-image/flux-image/common/logger"
	"github.com/joho/godotenv"
)

var (
	Port         = flag.Int("port", 5000, "the listening port, PORT overrides it")
	PrintVersion = flag.Bool("version", false, "print version and exit")
	PrintHelp    = flag.Bool("help", false, "print help and exit")
	LogDir       = flag.String("log-dir", "", "specify the log directory")
	EnvFile      = flag.String("env-file", ".env", "dotenv file loaded before reading the environment")
)

func printHelp() {
	fmt.Println(config.SystemName + " " + Version + " - text-to-image front end for the Together API.")
	fmt.Println("Usage: flux-image [--port <port>] [--log-dir <log directory>] [--env-file <file>] [--version] [--help]")
	fmt.Println("       flux-prompt [--log-dir <log directory>] [--env-file <file>]")
}

// Init parses flags, applies the dotenv file and loads configuration. Binaries call it
// first thing in main.
func Init() {
	flag.Parse()

	if *PrintVersion {
		fmt.Println(Version)
		os.Exit(0)
	}

	if *PrintHelp {
		printHelp()
		os.Exit(0)
	}

	// Variables already present in the environment are not overwritten.
	envLoadErr := godotenv.Load(*EnvFile)
	config.Load()
	if os.Getenv("PORT") == "" {
		config.DefaultPort = *Port
	}

	logDir := *LogDir
	if logDir == "" {
		logDir = os.Getenv("LOG_DIR")
	}
	if logDir != "" {
		var err error
		logDir, err = filepath.Abs(logDir)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := os.Stat(logDir); os.IsNotExist(err) {
			err = os.Mkdir(logDir, 0777)
			if err != nil {
				log.Fatal(err)
			}
		}
		logger.LogDir = logDir
	}
	logger.SetupLogger()

	if envLoadErr != nil && !os.IsNotExist(envLoadErr) {
		logger.SysError(fmt.Sprintf("failed to load %s: %s", *EnvFile, envLoadErr.Error()))
	}
	if !config.SessionSecretConfigured {
		logger.SysLog("SECRET_KEY is not set, sessions are signed with a random key and will not survive a restart")
	}
}
