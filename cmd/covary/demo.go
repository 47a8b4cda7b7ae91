package main

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/viant/covary"
	"github.com/viant/covary/conv"
	"github.com/viant/covary/internal/render"
	"github.com/viant/covary/value"
)

type demo struct {
	out    io.Writer
	format string
	logger *logrus.Logger
	now    func() time.Time
}

func (d *demo) run() error {
	steps := []struct {
		title string
		run   func() error
	}{
		{"1. Contravariance", d.contravariance},
		{"2. Covariance", d.covariance},
		{"3. Value to int", d.valueToInt},
		{"4. Different converters", d.differentConverters},
	}
	for i, step := range steps {
		if i > 0 {
			fmt.Fprintln(d.out)
		}
		fmt.Fprintln(d.out, step.title+":")
		if err := step.run(); err != nil {
			return fmt.Errorf("%s: %w", step.title, err)
		}
	}
	return nil
}

func (d *demo) contravariance() error {
	input := []string{"123", "456", "789"}
	d.logger.WithField("items", len(input)).Debug("converting strings to ints")
	return writeResult(d, "Result", covary.Map[string, int](input, conv.StringToInt{}))
}

func (d *demo) covariance() error {
	input := value.MustList(42, "Hello", 3.14, nil)
	d.logger.WithField("items", len(input)).Debug("converting values through a widened text converter")
	var converter conv.Converter[value.Value, any] = conv.Widen[value.Value, string](conv.Text{})
	return writeResult(d, "Result", covary.Map(input, converter))
}

func (d *demo) valueToInt() error {
	input := []interface{}{"100", 200, "300", nil}
	d.logger.WithField("items", len(input)).Debug("converting values to ints")
	result, err := covary.MapAny[int](input, conv.ValueToInt{})
	if err != nil {
		return err
	}
	return writeResult(d, "Result", result)
}

func (d *demo) differentConverters() error {
	input, err := value.List(100, "Test", d.now(), 2.71, nil)
	if err != nil {
		return err
	}
	d.logger.WithField("items", len(input)).Debug("converting values with simple and detailed converters")
	if err = writeResult(d, "Simple", covary.Map[value.Value, string](input, conv.Text{})); err != nil {
		return err
	}
	return writeResult(d, "Detailed", covary.Map[value.Value, string](input, conv.DetailedText{}))
}

func writeResult[T any](d *demo, label string, items []T) error {
	text := render.Text(items)
	if d.format == formatJSON {
		data, err := render.JSON(items)
		if err != nil {
			return err
		}
		text = string(data)
	}
	_, err := fmt.Fprintf(d.out, "%s: %s\n", label, text)
	return err
}
