package main

import (
	"fmt"
	"os"
	"time"

	"github.com/antgroup/progressors/pkg/progress"
	"github.com/sirupsen/logrus"
)

func main() {
	style := progress.ASCII()
	style.ValueDisplay = progress.ValuePercentage
	b := progress.New(style, progress.WithTotal(400))
	for i := uint64(0); i <= b.Total(); i++ {
		if err := b.Erase(); err != nil {
			logrus.Fatalf("erase: %v", err)
		}
		b.SetValue(i)
		if err := b.Draw(); err != nil {
			logrus.Fatalf("draw: %v", err)
		}
		time.Sleep(time.Millisecond * 25)
	}
	fmt.Fprintln(os.Stdout)
}
