// The enroll command stores a captured face image as the reference for an
// account. The camera itself is out of scope: the image arrives as a file.
//
// Usage: enroll -account 1001 -image face.jpg
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gvbank/teller/infra/facestore"
	"github.com/gvbank/teller/pkg/config"
)

func main() {
	account := flag.Int64("account", 0, "account number (as in the accounts file)")
	image := flag.String("image", "", "path to the captured face image")
	flag.Parse()

	if *account < 1 || *image == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	if err := enroll(cfg.Ledger.FacesDir, *account, *image); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Face image saved for account %d.\n", *account)
}

func enroll(facesDir string, account int64, imagePath string) error {
	store, err := facestore.New(facesDir)
	if err != nil {
		return err
	}
	// References are written once; there is no re-enrollment flow.
	if store.Exists(account) {
		return fmt.Errorf("account %d already has a face reference", account)
	}
	image, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	return store.Store(account, image)
}
