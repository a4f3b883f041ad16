// Command mdeckinfo connects to the first recognized AKP-series device
// and either prints its identity and streams input events, or, given
// -logo, uploads a boot logo image and exits.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/HopIT-Hub/mdeck-go"
	"github.com/HopIT-Hub/mdeck-go/mdeckhid"
)

func main() {
	serial := flag.String("serial", "", "serial number of the device to connect to (default: first found)")
	logoPath := flag.String("logo", "", "path to an image to upload as the boot logo, then exit")
	connectAttempts := flag.Int("connect-attempts", 10, "number of connection attempts before giving up")
	flag.Parse()

	enumerator := mdeckhid.NewEnumerator()

	devices, err := mdeck.ListDevices(enumerator)
	if err != nil {
		log.Fatalf("[mdeckinfo] enumerate: %v", err)
	}
	if len(devices) == 0 {
		log.Fatal("[mdeckinfo] no devices found")
	}

	target := devices[0]
	if *serial != "" {
		found := false
		for _, d := range devices {
			if d.Serial == *serial {
				target = d
				found = true
				break
			}
		}
		if !found {
			log.Fatalf("[mdeckinfo] no device with serial %q", *serial)
		}
	}

	session, err := mdeck.ConnectWithRetries(enumerator, target.Kind, target.Serial, *connectAttempts)
	if err != nil {
		log.Fatalf("[mdeckinfo] connect: %v", err)
	}
	defer session.Close()

	if *logoPath != "" {
		runSetLogo(session, *logoPath)
		return
	}

	runEventLoop(session)
}

func runSetLogo(session *mdeck.Session, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("[mdeckinfo] open %s: %v", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Fatalf("[mdeckinfo] decode %s: %v", path, err)
	}

	data, err := mdeck.ConvertImageWithFormat(session.Kind().LogoImageFormat(), img)
	if err != nil {
		log.Fatalf("[mdeckinfo] convert image: %v", err)
	}

	fmt.Printf("setting boot logo image: %s\n", path)
	if err := session.SetLogoImage(data); err != nil {
		log.Fatalf("[mdeckinfo] set logo image: %v", err)
	}
	fmt.Println("boot logo image updated")
}

func runEventLoop(session *mdeck.Session) {
	serial, _ := session.SerialNumber()
	version, err := session.FirmwareVersion()
	if err != nil {
		log.Printf("[mdeckinfo] firmware version: %v", err)
	}
	fmt.Printf("connected to %q (%s), firmware %q\n", serial, session.Kind(), version)

	if err := session.SetBrightness(50); err != nil {
		log.Fatalf("[mdeckinfo] set brightness: %v", err)
	}
	if err := session.ClearAllButtonImages(); err != nil {
		log.Fatalf("[mdeckinfo] clear all button images: %v", err)
	}

	reader := mdeck.NewEventReader(session)
	for {
		events, err := reader.Read(100 * time.Second)
		if err != nil {
			log.Printf("[mdeckinfo] read: %v", err)
			break
		}
		for _, ev := range events {
			switch ev.Kind {
			case mdeck.EventEncoderTwist:
				fmt.Printf("encoder %d twisted by %d\n", ev.Index, ev.Change)
			default:
				fmt.Printf("%s %d\n", ev, ev.Index)
			}
		}
	}

	session.Shutdown()
}
