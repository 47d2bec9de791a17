package main

import (
	"log"
	"os"

	"envsh/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env.local or .env if present,
	// without overriding anything already set. The ambient environment is
	// what the level counter reads, so precedence matters here.
	loadEnvNoOverride(".env.local")
	loadEnvNoOverride(".env")
	cmd.Execute()
}

func loadEnvNoOverride(filename string) {
	m, err := godotenv.Read(filename)
	if err != nil {
		return
	}
	for k, v := range m {
		if _, exists := os.LookupEnv(k); exists {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			log.Printf("warn: failed setting env %s from %s: %v", k, filename, err)
		}
	}
}
