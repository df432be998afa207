package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// linalg-plot draws the column vectors of a 2xN matrix as arrows from the
// origin, colored by length. With a 2x2 transform it draws the matrix and
// its image side by side:
//
//	linalg-plot vectors -m "3,1; 4,0" -o vectors.png
//	linalg-plot vectors -m "1,0; 0,1" -t "2,1; 0,2" -o shear.html
//	linalg-plot vectors -i input.json --show
func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
