package main

import (
	"go.uber.org/zap"

	"radon/decay"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	iso := decay.Rn222()

	times := decay.Times()
	days := decay.Days(times)
	analytic := iso.Analytic(decay.N0, times)
	runs := decay.Results()

	if err := runs.SaveDecayChart(days, analytic); err != nil {
		logger.Fatal("rendering decay chart", zap.Error(err))
	}
	if err := runs.SaveErrorChart(days); err != nil {
		logger.Fatal("rendering error chart", zap.Error(err))
	}

	logger.Info("charts saved",
		zap.String("isotope", iso.Name()),
		zap.String("decay", decay.DecayChartFile),
		zap.String("error", decay.ErrorChartFile),
	)
}
