// Package export escribe y lee el volcado de mascotas en texto plano.
// El formato es un bloque "Clave: valor" por mascota, cerrado con una
// línea de veinte guiones.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pettrackr/internal/domain/pets"
)

const separator = "--------------------"

// WritePets vuelca las mascotas en el formato de intercambio.
func WritePets(w io.Writer, list []pets.Pet) error {
	bw := bufio.NewWriter(w)
	for _, p := range list {
		fmt.Fprintf(bw, "ID: %d\n", p.ID)
		fmt.Fprintf(bw, "Name: %s\n", p.Name)
		fmt.Fprintf(bw, "Breed: %s\n", p.Breed)
		fmt.Fprintf(bw, "Birthdate: %s\n", p.Birthdate)
		fmt.Fprintf(bw, "Image Path: %s\n", p.ImagePath)
		fmt.Fprintln(bw, separator)
	}
	return bw.Flush()
}

// ReadPets parsea un volcado. Las claves desconocidas se ignoran y un
// bloque sin separador final se descarta, igual que hacía la herramienta
// original.
func ReadPets(r io.Reader) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	var p pets.Pet
	var seen bool

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "ID:"):
			id, err := strconv.ParseInt(value(line), 10, 64)
			if err == nil {
				p.ID = id
			}
			seen = true
		case strings.HasPrefix(line, "Name:"):
			p.Name = value(line)
			seen = true
		case strings.HasPrefix(line, "Breed:"):
			p.Breed = value(line)
			seen = true
		case strings.HasPrefix(line, "Birthdate:"):
			p.Birthdate = value(line)
			seen = true
		case strings.HasPrefix(line, "Image Path:"):
			p.ImagePath = value(line)
			seen = true
		case strings.TrimSpace(line) == separator:
			if seen {
				out = append(out, p)
			}
			p = pets.Pet{}
			seen = false
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func value(line string) string {
	_, v, _ := strings.Cut(line, ":")
	return strings.TrimSpace(v)
}
