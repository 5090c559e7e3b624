// Command migrate manages the vivaran Postgres schema using the
// migration files under db/migrations.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"vivaran/internal/config"
)

const usage = "Usage: migrate [up|down|steps N|force V|version]"

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("migrate: loading config: %v", err)
	}

	m, err := migrate.New("file://db/migrations", cfg.DB.DSN())
	if err != nil {
		log.Fatalf("migrate: opening migration source: %v", err)
	}
	defer m.Close()

	switch cmd := os.Args[1]; cmd {
	case "up":
		run(m.Up, "schema is up to date")

	case "down":
		run(m.Down, "schema rolled back")

	case "steps":
		n := intArg("steps")
		run(func() error { return m.Steps(n) }, fmt.Sprintf("applied %d step(s)", n))

	case "force":
		// Clears a dirty flag left by an interrupted migration.
		v := intArg("force")
		if err := m.Force(v); err != nil {
			log.Fatalf("migrate: force %d: %v", v, err)
		}
		log.Printf("migrate: version forced to %d", v)

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied yet")
			return
		}
		if err != nil {
			log.Fatalf("migrate: reading version: %v", err)
		}
		fmt.Printf("version: %d, dirty: %v\n", version, dirty)

	default:
		fmt.Printf("unknown command: %s\n%s\n", cmd, usage)
		os.Exit(1)
	}
}

func run(fn func() error, okMsg string) {
	if err := fn(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migrate: %v", err)
	}
	log.Printf("migrate: %s", okMsg)
}

func intArg(cmd string) int {
	if len(os.Args) < 3 {
		log.Fatalf("migrate: %s requires a number argument", cmd)
	}
	n, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatalf("migrate: invalid %s argument %q", cmd, os.Args[2])
	}
	return n
}
