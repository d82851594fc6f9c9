// FilePath: internal/models/models_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUnitCreateValidate(t *testing.T) {
	create := &UnitCreate{Name: "Warehouse A", Location: "Berlin"}
	require.NoError(t, create.Validate())

	create = &UnitCreate{Name: "", Location: "Berlin"}
	assert.Error(t, create.Validate())

	create = &UnitCreate{Name: "Warehouse A", Location: ""}
	assert.Error(t, create.Validate())

	long := make([]byte, UnitNameMaxLen+1)
	for i := range long {
		long[i] = 'x'
	}
	create = &UnitCreate{Name: string(long), Location: "Berlin"}
	assert.Error(t, create.Validate())
}

func TestUnitUpdateEmpty(t *testing.T) {
	update := &UnitUpdate{}
	assert.True(t, update.Empty())

	update.Name = strPtr("renamed")
	assert.False(t, update.Empty())
	require.NoError(t, update.Validate())

	update.Name = strPtr("")
	assert.Error(t, update.Validate())
}

func TestSensorTypeValid(t *testing.T) {
	for _, st := range []SensorType{Temperature, Humidity, Pressure, Motion, Light, Sound, Other} {
		assert.True(t, st.Valid(), "expected %q to be valid", st)
	}
	assert.False(t, SensorType("voltage").Valid())
	assert.False(t, SensorType("").Valid())
}

func TestSensorCreateValidate(t *testing.T) {
	create := &SensorCreate{Name: "temp-01", SensorType: Temperature, UnitID: 1}
	require.NoError(t, create.Validate())
	// default status applied
	assert.Equal(t, SensorActive, create.Status)

	create = &SensorCreate{Name: "temp-01", SensorType: "bogus", UnitID: 1}
	assert.Error(t, create.Validate())

	create = &SensorCreate{Name: "temp-01", SensorType: Temperature, UnitID: 0}
	assert.Error(t, create.Validate())

	create = &SensorCreate{Name: "temp-01", SensorType: Temperature, UnitID: 1, Status: "broken"}
	assert.Error(t, create.Validate())
}

func TestSensorUpdateValidate(t *testing.T) {
	update := &SensorUpdate{}
	assert.True(t, update.Empty())
	require.NoError(t, update.Validate())

	badType := SensorType("bogus")
	update = &SensorUpdate{SensorType: &badType}
	assert.Error(t, update.Validate())

	badUnit := int64(-3)
	update = &SensorUpdate{UnitID: &badUnit}
	assert.Error(t, update.Validate())

	status := SensorMaintenance
	update = &SensorUpdate{Status: &status}
	require.NoError(t, update.Validate())
	assert.False(t, update.Empty())
}

func TestDataStatusValid(t *testing.T) {
	for _, s := range []DataStatus{DataPending, DataValidated, DataArchived, DataInvalid} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}
	assert.False(t, DataStatus("done").Valid())
}

func TestSensorDataCreateValidate(t *testing.T) {
	value := 21.5
	create := &SensorDataCreate{SensorID: 1, Value: &value}
	require.NoError(t, create.Validate())
	// default status applied
	assert.Equal(t, DataPending, create.Status)

	create = &SensorDataCreate{SensorID: 0, Value: &value}
	assert.Error(t, create.Validate())

	// a reading without a value is rejected, not recorded as 0.0
	create = &SensorDataCreate{SensorID: 1}
	assert.Error(t, create.Validate())

	create = &SensorDataCreate{SensorID: 1, Value: &value, Status: "done"}
	assert.Error(t, create.Validate())
}

func TestSensorDataUpdateValidate(t *testing.T) {
	update := &SensorDataUpdate{}
	assert.True(t, update.Empty())
	require.NoError(t, update.Validate())

	// "invalid" is reachable via direct update
	invalid := DataInvalid
	update = &SensorDataUpdate{Status: &invalid}
	require.NoError(t, update.Validate())

	bad := DataStatus("done")
	update = &SensorDataUpdate{Status: &bad}
	assert.Error(t, update.Validate())
}
