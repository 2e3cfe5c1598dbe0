package main

const regNoHelp = `What is a Dairy Establishment Registration Number

In Canada, a dairy processing plant must have a Dairy Establishment
Registration Number in order to sell the products made there in other
provinces or export them internationally. This number is printed on all
dairy products manufactured by these plants, and allows food inspectors
to quickly link a product to a specific plant in case of contamination
or spoilage.

Because the registration number uniquely identifies a processing plant,
it can also be used to find out which company actually manufactures a
grocery store chain's generic brand dairy products. It can also be used
to estimate how far the product had to be transported to reach the local
store shelves, for consumers who want to support local producers.

Where to find it on a product

There are no set rules on where and how the number must be displayed,
but these locations are common:

  - printed with the "best before" date, often prefixed with "REG." or "AGRT"
  - inside a small rectangle on the back label
  - printed along with other food certification labels such as organic
    certification

A dairy product may not have a registration number printed if it was
imported from outside Canada, or if the producer sells none of its dairy
products outside its home province and so is not required to register.

Where does this data come from

The registry is published by the Canadian Dairy Commission.
`
