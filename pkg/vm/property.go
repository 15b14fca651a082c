package vm

// Property describes one own property. A descriptor is a data descriptor
// when it carries a value or a writable flag, and an accessor descriptor
// when it carries a getter or a setter. The attribute flags are tri-state:
// an unset flag projects as false but is distinguishable from an explicit
// false when merging descriptors.
type Property struct {
	value  Value
	getter Value
	setter Value

	hasValue  bool
	hasGetter bool
	hasSetter bool

	writable     *bool
	enumerable   *bool
	configurable *bool
}

func NewProperty() Property {
	return Property{}
}

func (p Property) WithValue(v Value) Property {
	p.value = v
	p.hasValue = true
	return p
}

func (p Property) WithGetter(v Value) Property {
	p.getter = v
	p.hasGetter = true
	return p
}

func (p Property) WithSetter(v Value) Property {
	p.setter = v
	p.hasSetter = true
	return p
}

func (p Property) WithWritable(b bool) Property {
	p.writable = &b
	return p
}

func (p Property) WithEnumerable(b bool) Property {
	p.enumerable = &b
	return p
}

func (p Property) WithConfigurable(b bool) Property {
	p.configurable = &b
	return p
}

// Value returns the stored value and whether one was set. A data descriptor
// whose value is Undefined still reports true.
func (p Property) Value() (Value, bool) {
	if !p.hasValue {
		return Undefined, false
	}
	return p.value, true
}

func (p Property) Getter() (Value, bool) {
	if !p.hasGetter {
		return Undefined, false
	}
	return p.getter, true
}

func (p Property) Setter() (Value, bool) {
	if !p.hasSetter {
		return Undefined, false
	}
	return p.setter, true
}

func (p Property) Writable() bool {
	return p.writable != nil && *p.writable
}

func (p Property) Enumerable() bool {
	return p.enumerable != nil && *p.enumerable
}

func (p Property) Configurable() bool {
	return p.configurable != nil && *p.configurable
}

func (p Property) IsDataDescriptor() bool {
	return p.hasValue || p.writable != nil
}

func (p Property) IsAccessorDescriptor() bool {
	return p.hasGetter || p.hasSetter
}

// project builds the descriptor returned by GetOwnProperty: data descriptors
// expose value/writable, accessor descriptors expose get/set, both carry the
// enumerable and configurable flags.
func (p Property) project() Property {
	d := NewProperty()
	if p.IsDataDescriptor() {
		d.value = p.value
		d.hasValue = p.hasValue
		d.writable = p.writable
	} else {
		d.getter = p.getter
		d.hasGetter = p.hasGetter
		d.setter = p.setter
		d.hasSetter = p.hasSetter
	}
	d.enumerable = p.enumerable
	d.configurable = p.configurable
	return d
}
