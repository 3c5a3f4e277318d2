// token emite un Bearer token HS256 para un operador de SeaSafety, firmado con JWT_SECRET.
//
// Uso: go run ./cmd/token -sub op-01 -name "Ana Souza" [-role admin]
// La expiración y el issuer salen de JWT_EXPIRATION_MINUTES y JWT_ISSUER.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/seasafety-api/pkg/config"
	"github.com/jhoicas/seasafety-api/pkg/jwt"
)

func main() {
	sub := flag.String("sub", "", "identificador del operador (subject)")
	name := flag.String("name", "", "nombre visible registrado como autor de los movimientos")
	role := flag.String("role", "operador", "rol: operador | admin")
	flag.Parse()

	if *sub == "" {
		fmt.Fprintln(os.Stderr, "falta -sub")
		flag.Usage()
		os.Exit(2)
	}
	if *role != "operador" && *role != "admin" {
		fmt.Fprintf(os.Stderr, "rol desconocido: %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido; la API acepta escrituras sin token")
		os.Exit(1)
	}

	token, err := jwt.Generate(cfg.JWT.Secret, *sub, *name, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Firmar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
