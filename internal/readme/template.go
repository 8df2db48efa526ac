// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readme

import (
	"fmt"
	"os"
)

// templateBody is the README skeleton with every recognized heading and
// placeholder list items.
const templateBody = `# %s

> Brief description of your research project

## Research Focus

- Machine Learning for Time Series Analysis
- Anomaly Detection in Industrial Systems
- Predictive Maintenance using Deep Learning

## Research Questions

- How can we improve early detection of equipment failures?
- What features are most predictive of anomalies?
- Can transfer learning improve model performance with limited data?

## Technologies

- Python 3.13
- TensorFlow / PyTorch
- Pandas & NumPy
- Scikit-learn

## Keywords

- partial discharge
- time series
- anomaly detection
- predictive maintenance
- deep learning
- transformer models

## Goals

- Develop real-time anomaly detection system
- Achieve >95%% accuracy in fault prediction
- Reduce false positives by 50%%

## Methodology

- Data preprocessing and feature engineering
- Model comparison (Random Forest, LSTM, Transformer)
- Cross-validation and hyperparameter tuning
- Deployment with monitoring

## Datasets

- Internal sensor data (2020-2025)
- Public benchmark datasets
- Simulated fault scenarios

## Related Papers

- "Benchmarking ML for Fault Detection" (2025)
- "Transformer Models for Time Series" (2024)

---

**Note:** Keep list items under each heading; the research assistant
extracts them mechanically to find relevant papers and suggest improvements.
`

// WriteTemplate writes a structured README skeleton to path using the
// given project name.
func WriteTemplate(path, projectName string) error {
	if projectName == "" {
		projectName = "Your Project"
	}
	content := fmt.Sprintf(templateBody, projectName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing README template: %w", err)
	}
	return nil
}
