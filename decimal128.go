// Copyright 2024 The stdxdecimal Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package decimal

import (
	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
)

// GetBSON implements bson.Getter, rendering d as a BSON Decimal128 for
// any document this library's values are embedded in — tabular data
// interchange with a database is a natural use case for an exact
// decimal type. Infinity and NaN travel as Decimal128's own special
// values: ParseDecimal128 accepts the "Infinity"/"-Infinity"/"NaN" text
// this library's String emits, and SetBSON reparses the Decimal128's
// text form.
func (d *Decimal) GetBSON() (interface{}, error) {
	dec, err := bson.ParseDecimal128(d.String())
	if err != nil {
		return nil, errors.Wrapf(err, "stdxdecimal: converting %s to Decimal128", d.String())
	}
	return dec, nil
}

// SetBSON implements bson.Setter, populating d from a BSON Decimal128
// raw value by reparsing its text form under NoOpPolicy — the BSON
// wire value has already been validated by the driver, so only flags,
// never hooks, need to observe the result here.
func (d *Decimal) SetBSON(raw bson.Raw) error {
	var dec bson.Decimal128
	if err := raw.Unmarshal(&dec); err != nil {
		return errors.Wrap(err, "stdxdecimal: unmarshaling Decimal128")
	}
	parsed, err := NoOpPolicy.Parse(dec.String())
	if err != nil {
		return errors.Wrapf(err, "stdxdecimal: parsing Decimal128 text %q", dec.String())
	}
	d.Set(parsed)
	return nil
}
